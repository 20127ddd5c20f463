package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Linear is a fully connected layer operating on column vectors.
//
// Forward: output = weightᵀ · input + bias
//
// Weight shape: [in_features, out_features]
// Bias shape:   [out_features, 1]
// Input shape:  [in_features, 1]
// Output shape: [out_features, 1]
//
// Both weight and bias are initialized uniformly in [-0.5, 0.5).
// The matrix products delegate to gonum's mat.Dense.
//
// Example:
//
//	linear := nn.NewLinear(1352, 10, rng)
//
//	input := tensor.New(tensor.Shape{1352, 1})
//	output := linear.Forward(input) // [10, 1]
type Linear struct {
	inFeatures  int
	outFeatures int

	weight *Parameter // [in_features, out_features]
	bias   *Parameter // [out_features, 1]

	input *tensor.Tensor
}

// NewLinear creates a new fully connected layer.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}

	weight := Uniform(tensor.Shape{inFeatures, outFeatures}, -0.5, 0.5, rng)
	bias := Uniform(tensor.Shape{outFeatures, 1}, -0.5, 0.5, rng)

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("linear.weight", weight),
		bias:        NewParameter("linear.bias", bias),
	}
}

// Forward computes weightᵀ·input + bias.
//
// Input: [in_features, 1]
// Output: [out_features, 1].
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	wantShape := tensor.Shape{l.inFeatures, 1}
	if !input.Shape().Equal(wantShape) {
		panic(fmt.Sprintf("linear: expected input shape %v, got %v",
			wantShape, input.Shape()))
	}
	l.input = input

	w := mat.NewDense(l.inFeatures, l.outFeatures, l.weight.tensor.Data())
	x := mat.NewDense(l.inFeatures, 1, input.Data())

	var y mat.Dense
	y.Mul(w.T(), x)

	output := tensor.FromSlice(tensor.Shape{l.outFeatures, 1}, y.RawMatrix().Data)
	floats.Add(output.Data(), l.bias.tensor.Data())
	return output
}

// Backward computes the input gradient and accumulates weight and bias
// gradients.
//
// Input gradient:  weight · outputGrad
// Weight gradient: input · outputGradᵀ (outer product)
// Bias gradient:   outputGrad
func (l *Linear) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if l.input == nil {
		panic("linear: Backward called before Forward")
	}
	wantShape := tensor.Shape{l.outFeatures, 1}
	if !outputGrad.Shape().Equal(wantShape) {
		panic(fmt.Sprintf("linear: expected output gradient shape %v, got %v",
			wantShape, outputGrad.Shape()))
	}

	w := mat.NewDense(l.inFeatures, l.outFeatures, l.weight.tensor.Data())
	x := mat.NewDense(l.inFeatures, 1, l.input.Data())
	d := mat.NewDense(l.outFeatures, 1, outputGrad.Data())

	var ig mat.Dense
	ig.Mul(w, d)
	inputGrad := tensor.FromSlice(tensor.Shape{l.inFeatures, 1}, ig.RawMatrix().Data)

	var wg mat.Dense
	wg.Mul(x, d.T())
	floats.Add(l.weight.grad.Data(), wg.RawMatrix().Data)
	floats.Add(l.bias.grad.Data(), outputGrad.Data())

	return inputGrad
}

// Parameters returns the weight and bias parameters.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// String returns a string representation of the layer.
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(in_features=%d, out_features=%d)", l.inFeatures, l.outFeatures)
}

// InFeatures returns the input feature count.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
