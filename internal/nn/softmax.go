package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Softmax normalizes a column vector into a probability distribution.
//
// Forward subtracts the maximum before exponentiating, so the result
// stays finite for inputs of any magnitude. The output entries are
// non-negative and sum to 1.
//
// Backward applies the softmax Jacobian diag(p) − p·pᵀ to the output
// gradient as p ⊙ δ − (pᵀδ)·p, without materializing the Jacobian.
type Softmax struct {
	output *tensor.Tensor // cached probabilities
}

// NewSoftmax creates a new softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward computes the stabilized softmax of a column vector.
//
// Input: [n, 1]
// Output: [n, 1], a probability distribution.
func (s *Softmax) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != 1 {
		panic(fmt.Sprintf("softmax: expected column vector [n,1], got shape %v", shape))
	}

	output := tensor.New(shape)
	in := input.Data()
	out := output.Data()

	// Subtract the max for numerical stability: exp never overflows
	// and the largest exponent is exactly 0.
	max := floats.Max(in)
	for i, v := range in {
		out[i] = math.Exp(v - max)
	}
	floats.Scale(1/floats.Sum(out), out)

	s.output = output
	return output
}

// Backward computes p ⊙ δ − (pᵀδ)·p for cached probabilities p.
func (s *Softmax) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if s.output == nil {
		panic("softmax: Backward called before Forward")
	}
	if !outputGrad.Shape().Equal(s.output.Shape()) {
		panic(fmt.Sprintf("softmax: expected output gradient shape %v, got %v",
			s.output.Shape(), outputGrad.Shape()))
	}

	p := s.output.Data()
	grad := outputGrad.Data()
	dot := floats.Dot(p, grad)

	inputGrad := tensor.New(s.output.Shape())
	ig := inputGrad.Data()
	for i := range p {
		ig[i] = p[i]*grad[i] - dot*p[i]
	}
	return inputGrad
}

// Parameters returns nil; Softmax has no trainable parameters.
func (s *Softmax) Parameters() []*Parameter {
	return nil
}

// String returns a string representation of the layer.
func (s *Softmax) String() string {
	return "Softmax()"
}
