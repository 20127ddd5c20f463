// Copyright 2025 Sprout ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor values in the
// Sprout ML framework.
//
// The package re-exports the dense row-major float64 tensor the
// library computes on:
//   - Tensor: flat float64 storage plus its Shape
//   - Shape: dimension sizes with row-major stride arithmetic
//
// Example:
//
//	x := tensor.New(tensor.Shape{28, 28})
//	x.Set(1, 14, 14)
//	col := x.Reshape(tensor.Shape{784, 1}) // shares storage
package tensor

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense row-major float64 tensor.
type Tensor = tensor.Tensor

// New creates a zero-filled tensor of the given shape.
func New(shape Shape) *Tensor {
	return tensor.New(shape)
}

// FromSlice creates a tensor of the given shape backed by data. It
// panics when the slice length does not match the shape.
func FromSlice(shape Shape, data []float64) *Tensor {
	return tensor.FromSlice(shape, data)
}

// Full creates a tensor of the given shape with every element set to
// value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Rand creates a tensor with elements drawn uniformly from [lo, hi).
func Rand(shape Shape, lo, hi float64, rng *rand.Rand) *Tensor {
	return tensor.Rand(shape, lo, hi, rng)
}

// Randn creates a tensor with elements drawn from the standard normal
// distribution.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	return tensor.Randn(shape, rng)
}
