// Package data provides dataset containers, train/validation
// splitting, and file loaders for the digit and weather exercises.
//
// Datasets hold raw byte intensities (0-255) as float64 tensors; the
// training driver normalizes each sample right before the forward
// pass, so loaders never rescale pixel values.
package data

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Canonical image sides for the two exercises.
const (
	DigitSide = 28 // digit images are 28x28 grayscale
	ColorSide = 32 // weather images arrive as 32x32 RGB
)

// Dataset pairs images with integer class labels.
//
// Images hold raw intensities in [0, 255]. Samples are immutable once
// loaded; training code must not write through the returned tensors.
type Dataset struct {
	Images     []*tensor.Tensor
	Labels     []int
	ClassCount int
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Images)
}

// Normalize maps raw intensities in [0, 255] to a zero-centered range
// by x/255 - 0.5. It returns a new tensor; the input is left
// untouched.
func Normalize(img *tensor.Tensor) *tensor.Tensor {
	out := img.Clone()
	floats.Scale(1.0/255.0, out.Data())
	floats.AddConst(-0.5, out.Data())
	return out
}
