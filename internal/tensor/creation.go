package tensor

import (
	"fmt"
	"math/rand"
)

// New creates a zero-filled tensor with the given shape.
//
// Example:
//
//	t := tensor.New(tensor.Shape{3, 4})
func New(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// FromSlice creates a tensor with the given shape backed by a copy of
// data. Panics if the data length does not match the shape.
//
// Example:
//
//	t := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
func FromSlice(shape Shape, data []float64) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("tensor: shape %v needs %d elements, got %d",
			shape, shape.NumElements(), len(data)))
	}
	t := &Tensor{shape: shape.Clone(), data: make([]float64, len(data))}
	copy(t.data, data)
	return t
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Rand creates a tensor with values drawn uniformly from [lo, hi).
//
// The generator is passed explicitly so initialization is reproducible
// under a fixed seed. Uses math/rand, which is the right tool for
// statistical sampling.
func Rand(shape Shape, lo, hi float64, rng *rand.Rand) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = lo + rng.Float64()*(hi-lo)
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution (mean 0, stddev 1) using the given generator.
func Randn(shape Shape, rng *rand.Rand) *Tensor {
	t := New(shape)
	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}
	return t
}
