package nn

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// ReLU applies the rectified linear unit activation element-wise.
//
// Forward: max(x, 0)
// Backward: passes the gradient where the input was strictly positive,
// zero elsewhere (the standard subgradient convention at zero).
//
// ReLU has no learnable parameters but caches its input, so one
// instance cannot be shared between concurrent forward/backward pairs.
type ReLU struct {
	input *tensor.Tensor
}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward computes max(x, 0) element-wise. Works on any shape.
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	r.input = input

	output := tensor.New(input.Shape())
	in := input.Data()
	out := output.Data()
	for i, v := range in {
		if v > 0 {
			out[i] = v
		}
	}
	return output
}

// Backward gates the output gradient by the cached input's sign.
func (r *ReLU) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if r.input == nil {
		panic("relu: Backward called before Forward")
	}
	if !outputGrad.Shape().Equal(r.input.Shape()) {
		panic(fmt.Sprintf("relu: expected output gradient shape %v, got %v",
			r.input.Shape(), outputGrad.Shape()))
	}

	inputGrad := tensor.New(r.input.Shape())
	in := r.input.Data()
	grad := outputGrad.Data()
	ig := inputGrad.Data()
	for i, v := range in {
		if v > 0 {
			ig[i] = grad[i]
		}
	}
	return inputGrad
}

// Parameters returns nil; ReLU has no trainable parameters.
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// String returns a string representation of the layer.
func (r *ReLU) String() string {
	return "ReLU()"
}
