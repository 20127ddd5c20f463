// Copyright 2025 Sprout ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network layers in the
// Sprout ML framework.
//
// The package re-exports the layer set of the library:
//   - Layer: the forward/backward contract every layer satisfies
//   - Conv2D, ReLU, MaxPool2D, Flatten, Linear, Softmax
//   - Parameter: trainable tensors with accumulated gradients
//   - NLLLoss: negative log-likelihood over softmax probabilities
//   - Sequential: ordered layer container
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewConv2D(8, 3, rng),
//	    nn.NewReLU(),
//	    nn.NewMaxPool2D(2),
//	    nn.NewFlatten(),
//	    nn.NewLinear(13*13*8, 10, rng),
//	    nn.NewSoftmax(),
//	)
package nn

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Layer is the base interface for all network layers.
type Layer = nn.Layer

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Conv2D is a single-channel 2D convolutional layer.
type Conv2D = nn.Conv2D

// NewConv2D creates a convolution layer with numFilters square
// kernels of the given size.
func NewConv2D(numFilters, kernelSize int, rng *rand.Rand) *Conv2D {
	return nn.NewConv2D(numFilters, kernelSize, rng)
}

// ReLU is the rectified linear activation layer.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// MaxPool2D is a non-overlapping square max-pooling layer.
type MaxPool2D = nn.MaxPool2D

// NewMaxPool2D creates a pooling layer with the given window size.
func NewMaxPool2D(kernelSize int) *MaxPool2D {
	return nn.NewMaxPool2D(kernelSize)
}

// Flatten reshapes a rank-3 activation into a column vector.
type Flatten = nn.Flatten

// NewFlatten creates a flatten layer.
func NewFlatten() *Flatten {
	return nn.NewFlatten()
}

// Linear is a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a dense layer mapping inFeatures to outFeatures.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// Softmax normalizes a column vector into a probability distribution.
type Softmax = nn.Softmax

// NewSoftmax creates a softmax layer.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// Containers and losses

// Sequential chains layers, applying forwards in order and backwards
// in reverse.
type Sequential = nn.Sequential

// NewSequential creates a sequential container from the given layers.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// NLLLoss is the negative log-likelihood loss over softmax
// probabilities.
type NLLLoss = nn.NLLLoss

// NewNLLLoss creates an NLL loss.
func NewNLLLoss() *NLLLoss {
	return nn.NewNLLLoss()
}

// Argmax returns the index of the largest element of a column vector.
func Argmax(t *tensor.Tensor) int {
	return nn.Argmax(t)
}
