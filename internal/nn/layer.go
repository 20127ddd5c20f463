// Package nn implements the neural network layers for the Sprout
// framework.
//
// This package provides the building blocks for small convolutional
// classifiers:
//   - Layer interface: forward/backward contract every layer satisfies
//   - Parameter: trainable tensors with accumulated gradients
//   - Conv2D, ReLU, MaxPool2D, Flatten, Linear, Softmax layers
//   - NLLLoss: negative log-likelihood over softmax probabilities
//   - Sequential: container for stacking layers
//
// Gradients are derived by hand in each layer's Backward method; there
// is no autodiff tape. Design inspired by PyTorch's nn.Module, adapted
// to explicit reverse-mode passes.
package nn

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Layer is the base interface for all network layers.
//
// Every layer must implement:
//   - Forward: compute output from input, caching whatever the
//     matching Backward needs
//   - Backward: consume the gradient with respect to the output and
//     return the gradient with respect to the input
//   - Parameters: return all trainable parameters
//
// Forward overwrites the layer's transient cache on every call, so a
// layer instance serves exactly one in-flight forward/backward pair.
// Interleaving samples through a shared instance corrupts the cache;
// the training driver therefore processes one sample to completion at
// a time.
//
// Backward only accumulates into each Parameter's gradient; applying
// the update is the optimizer's job.
type Layer interface {
	// Forward computes the layer's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Backward computes the gradient with respect to the layer's
	// input, given the gradient with respect to its output. For
	// parameterized layers it also accumulates parameter gradients.
	//
	// The output gradient's shape must match the shape returned by the
	// preceding Forward call exactly; violations panic.
	Backward(outputGrad *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this layer.
	// Layers without parameters return nil.
	Parameters() []*Parameter
}
