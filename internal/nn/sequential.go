package nn

import (
	"fmt"
	"strings"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Sequential chains layers into a pipeline.
//
// Forward applies the layers in order, each output becoming the next
// input; Backward walks the same layers in reverse, threading the
// gradient. The container never inspects what kind of layer it holds.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewConv2D(8, 3, rng),
//	    nn.NewReLU(),
//	    nn.NewMaxPool2D(2),
//	    nn.NewFlatten(),
//	    nn.NewLinear(13*13*8, 10, rng),
//	    nn.NewSoftmax(),
//	)
//
//	probs := model.Forward(image)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container from the given
// layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Forward applies all layers in order.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input
	for _, layer := range s.layers {
		output = layer.Forward(output)
	}
	return output
}

// Backward propagates the gradient through all layers in reverse
// order, returning the gradient with respect to the original input.
func (s *Sequential) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	grad := outputGrad
	for i := len(s.layers) - 1; i >= 0; i-- {
		grad = s.layers[i].Backward(grad)
	}
	return grad
}

// Parameters returns all trainable parameters from all layers, in
// layer order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index. Panics if the index is
// out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic(fmt.Sprintf("sequential: index %d out of bounds for %d layers", index, len(s.layers)))
	}
	return s.layers[index]
}

// String lists the contained layers.
func (s *Sequential) String() string {
	parts := make([]string, len(s.layers))
	for i, layer := range s.layers {
		parts[i] = fmt.Sprintf("%v", layer)
	}
	return "Sequential(" + strings.Join(parts, " -> ") + ")"
}
