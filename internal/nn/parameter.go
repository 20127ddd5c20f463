package nn

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors whose gradients are accumulated during the
// backward pass. They typically represent weights and biases of layers.
//
// Example:
//
//	weight := nn.NewParameter("linear.weight", weightTensor)
//
//	// After a backward pass:
//	grad := weight.Grad()
//
//	// Before the next sample:
//	weight.ZeroGrad()
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter creates a new trainable parameter.
//
// The gradient buffer is allocated immediately, shape-matched to the
// tensor and zero-filled, so backward passes can accumulate into it
// without a nil check.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   tensor.New(t.Shape()),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient tensor. It always has the same
// shape as the parameter tensor.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// ZeroGrad clears the accumulated gradient in place.
//
// Called by the optimizer after each step so gradients from unrelated
// samples do not mix.
func (p *Parameter) ZeroGrad() {
	p.grad.Zero()
}
