// Package tensor provides the dense float64 tensors the rest of the
// library computes on.
//
// Tensors are row-major and CPU-resident. There is no dtype genericity,
// no broadcasting, and no strided views: every consumer in this library
// is shape-strict and asserts the shapes it expects, so the tensor type
// stays a flat []float64 plus its Shape.
package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense row-major float64 tensor.
//
// The backing slice is shared by Reshape and exposed by Data; callers
// that need isolation use Clone.
type Tensor struct {
	shape Shape
	data  []float64
}

// Shape returns the tensor's shape. The returned slice is the tensor's
// own; callers must not modify it.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Data returns the backing slice in row-major order.
//
// Mutations through the slice are visible to every tensor sharing the
// storage. Layer and optimizer inner loops operate on this slice
// directly.
func (t *Tensor) Data() []float64 {
	return t.data
}

// NumElements returns the total element count.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Clone returns a deep copy with its own storage.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// Reshape returns a tensor with the given shape sharing this tensor's
// storage. Panics if the element counts differ.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if shape.NumElements() != t.shape.NumElements() {
		panic(fmt.Sprintf("tensor: cannot reshape %v (%d elements) to %v (%d elements)",
			t.shape, t.shape.NumElements(), shape, shape.NumElements()))
	}
	return &Tensor{shape: shape.Clone(), data: t.data}
}

// At returns the element at the given indices. The number of indices
// must match the tensor's rank and each index must be in range;
// violations panic.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set stores v at the given indices.
func (t *Tensor) Set(v float64, indices ...int) {
	t.data[t.offset(indices)] = v
}

// offset converts multi-dimensional indices to a flat row-major offset.
func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices for shape %v, got %d",
			len(t.shape), t.shape, len(indices)))
	}
	off := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of shape %v",
				idx, i, t.shape))
		}
		off += idx * stride
		stride *= t.shape[i]
	}
	return off
}

// Zero sets every element to zero in place.
func (t *Tensor) Zero() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// Equal reports whether both tensors have the same shape and exactly
// equal elements.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the shape and a short data preview for debugging.
func (t *Tensor) String() string {
	const preview = 8
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(shape=%v, data=[", t.shape)
	for i, v := range t.data {
		if i == preview {
			fmt.Fprintf(&b, " ... %d more", len(t.data)-preview)
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%.4g", v)
	}
	b.WriteString("])")
	return b.String()
}
