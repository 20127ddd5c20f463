package nn

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Flatten reshapes a multi-dimensional tensor into a column vector,
// preserving row-major element order. It sits between the spatial
// layers and the first Linear layer.
//
// Input shape:  [channels, height, width] (any rank works)
// Output shape: [channels·height·width, 1]
//
// Flatten is a pure reshape: backward restores the cached input shape
// without touching any value, making it an exact structural inverse.
type Flatten struct {
	inputShape tensor.Shape
}

// NewFlatten creates a new flatten layer.
func NewFlatten() *Flatten {
	return &Flatten{}
}

// Forward reshapes the input to a column vector.
func (f *Flatten) Forward(input *tensor.Tensor) *tensor.Tensor {
	f.inputShape = input.Shape().Clone()
	return input.Reshape(tensor.Shape{input.NumElements(), 1})
}

// Backward reshapes the column-vector gradient back to the cached
// input shape.
func (f *Flatten) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if f.inputShape == nil {
		panic("flatten: Backward called before Forward")
	}
	wantShape := tensor.Shape{f.inputShape.NumElements(), 1}
	if !outputGrad.Shape().Equal(wantShape) {
		panic(fmt.Sprintf("flatten: expected output gradient shape %v, got %v",
			wantShape, outputGrad.Shape()))
	}
	return outputGrad.Reshape(f.inputShape)
}

// Parameters returns nil; Flatten has no trainable parameters.
func (f *Flatten) Parameters() []*Parameter {
	return nil
}

// String returns a string representation of the layer.
func (f *Flatten) String() string {
	return "Flatten()"
}
