package nn

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Conv2D is a single-channel 2D convolutional layer.
//
// Performs valid cross-correlation (no kernel flip, no padding, stride
// 1): each output element is the product-sum of an input patch with a
// filter kernel, plus that filter's bias.
//
// Input shape:  [height, width]
// Filter shape: [num_filters, kernel, kernel]
// Bias shape:   [num_filters]
// Output shape: [num_filters, height-kernel+1, width-kernel+1]
//
// Example:
//
//	// 8 filters with 3x3 kernels
//	conv := nn.NewConv2D(8, 3, rng)
//
//	input := tensor.New(tensor.Shape{28, 28})
//	output := conv.Forward(input) // [8, 26, 26]
type Conv2D struct {
	numFilters int
	kernelSize int

	filters *Parameter // [num_filters, kernel, kernel]
	bias    *Parameter // [num_filters]

	input *tensor.Tensor // cached by Forward for the backward pass
}

// NewConv2D creates a new single-channel convolutional layer.
//
// Filters are initialized from a normal distribution scaled by
// 1/kernelSize²; biases start at zero.
func NewConv2D(numFilters, kernelSize int, rng *rand.Rand) *Conv2D {
	if numFilters <= 0 {
		panic(fmt.Sprintf("conv2d: invalid filter count %d", numFilters))
	}
	if kernelSize <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size %d", kernelSize))
	}

	filterShape := tensor.Shape{numFilters, kernelSize, kernelSize}
	filters := ScaledNormal(filterShape, float64(kernelSize*kernelSize), rng)

	return &Conv2D{
		numFilters: numFilters,
		kernelSize: kernelSize,
		filters:    NewParameter("conv2d.filters", filters),
		bias:       NewParameter("conv2d.bias", tensor.New(tensor.Shape{numFilters})),
	}
}

// Forward performs the forward pass.
//
// Input: [height, width]
// Output: [num_filters, height-kernel+1, width-kernel+1].
func (c *Conv2D) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("conv2d: expected 2D input [H,W], got shape %v", shape))
	}
	h, w := shape[0], shape[1]
	k := c.kernelSize
	if h < k || w < k {
		panic(fmt.Sprintf("conv2d: input %v smaller than %dx%d kernel", shape, k, k))
	}
	c.input = input

	outH := h - k + 1
	outW := w - k + 1
	output := tensor.New(tensor.Shape{c.numFilters, outH, outW})

	in := input.Data()
	fil := c.filters.tensor.Data()
	bias := c.bias.tensor.Data()
	out := output.Data()

	for f := 0; f < c.numFilters; f++ {
		filterOff := f * k * k
		planeOff := f * outH * outW
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				sum := bias[f]
				for ki := 0; ki < k; ki++ {
					inRow := (i+ki)*w + j
					filRow := filterOff + ki*k
					for kj := 0; kj < k; kj++ {
						sum += in[inRow+kj] * fil[filRow+kj]
					}
				}
				out[planeOff+i*outW+j] = sum
			}
		}
	}

	return output
}

// Backward computes the input gradient and accumulates filter and bias
// gradients.
//
// The input gradient is the transpose of the forward correlation: the
// 180°-rotated kernel correlated over the output gradient zero-padded
// by kernel-1 on every side (a full convolution), summed over filters.
// The filter gradient correlates input patches with the matching
// output-gradient scalars; the bias gradient is the per-filter sum of
// the output gradient.
func (c *Conv2D) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if c.input == nil {
		panic("conv2d: Backward called before Forward")
	}
	h, w := c.input.Shape()[0], c.input.Shape()[1]
	k := c.kernelSize
	outH := h - k + 1
	outW := w - k + 1

	wantShape := tensor.Shape{c.numFilters, outH, outW}
	if !outputGrad.Shape().Equal(wantShape) {
		panic(fmt.Sprintf("conv2d: expected output gradient shape %v, got %v",
			wantShape, outputGrad.Shape()))
	}

	in := c.input.Data()
	fil := c.filters.tensor.Data()
	filGrad := c.filters.grad.Data()
	biasGrad := c.bias.grad.Data()
	grad := outputGrad.Data()

	// Filter and bias gradients.
	for f := 0; f < c.numFilters; f++ {
		filterOff := f * k * k
		planeOff := f * outH * outW
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				g := grad[planeOff+i*outW+j]
				for ki := 0; ki < k; ki++ {
					inRow := (i+ki)*w + j
					filRow := filterOff + ki*k
					for kj := 0; kj < k; kj++ {
						filGrad[filRow+kj] += in[inRow+kj] * g
					}
				}
			}
		}
		biasGrad[f] += floats.Sum(grad[planeOff : planeOff+outH*outW])
	}

	// Input gradient: correlate the rotated kernel over the padded
	// output gradient. Padding by kernel-1 makes the valid correlation
	// come out at exactly the cached input's shape.
	pad := k - 1
	padH := outH + 2*pad
	padW := outW + 2*pad
	padded := make([]float64, c.numFilters*padH*padW)
	for f := 0; f < c.numFilters; f++ {
		planeOff := f * outH * outW
		padOff := f * padH * padW
		for i := 0; i < outH; i++ {
			srcRow := planeOff + i*outW
			dstRow := padOff + (i+pad)*padW + pad
			copy(padded[dstRow:dstRow+outW], grad[srcRow:srcRow+outW])
		}
	}

	inputGrad := tensor.New(tensor.Shape{h, w})
	ig := inputGrad.Data()
	for f := 0; f < c.numFilters; f++ {
		filterOff := f * k * k
		padOff := f * padH * padW
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sum := 0.0
				for ki := 0; ki < k; ki++ {
					padRow := padOff + (y+ki)*padW + x
					// Rotated kernel: index (k-1-ki, k-1-kj).
					rotRow := filterOff + (k-1-ki)*k
					for kj := 0; kj < k; kj++ {
						sum += padded[padRow+kj] * fil[rotRow+(k-1-kj)]
					}
				}
				ig[y*w+x] += sum
			}
		}
	}

	return inputGrad
}

// Parameters returns the filter and bias parameters.
func (c *Conv2D) Parameters() []*Parameter {
	return []*Parameter{c.filters, c.bias}
}

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(num_filters=%d, kernel_size=%d)", c.numFilters, c.kernelSize)
}

// NumFilters returns the number of filters.
func (c *Conv2D) NumFilters() int {
	return c.numFilters
}

// KernelSize returns the square kernel size.
func (c *Conv2D) KernelSize() int {
	return c.kernelSize
}

// ComputeOutputSize computes output spatial dimensions for a given
// input size.
//
// Returns: [out_height, out_width].
func (c *Conv2D) ComputeOutputSize(inputH, inputW int) [2]int {
	return [2]int{inputH - c.kernelSize + 1, inputW - c.kernelSize + 1}
}
