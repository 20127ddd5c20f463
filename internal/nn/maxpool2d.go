package nn

import (
	"fmt"
	"math"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// MaxPool2D is a 2D max pooling layer over non-overlapping windows.
//
// Pooling reduces spatial dimensions by taking the maximum of each
// kernelSize×kernelSize block per channel. The window must evenly
// divide both spatial dimensions; there is no padding or remainder
// handling. MaxPool2D has no learnable parameters.
//
// Input shape:  [channels, height, width]
// Output shape: [channels, height/kernelSize, width/kernelSize]
//
// Example:
//
//	pool := nn.NewMaxPool2D(2)
//
//	input := tensor.New(tensor.Shape{8, 26, 26})
//	output := pool.Forward(input) // [8, 13, 13]
type MaxPool2D struct {
	kernelSize int

	input *tensor.Tensor
}

// NewMaxPool2D creates a new max pooling layer with a square window.
func NewMaxPool2D(kernelSize int) *MaxPool2D {
	if kernelSize <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", kernelSize))
	}
	return &MaxPool2D{kernelSize: kernelSize}
}

// Forward performs the forward pass.
//
// Input: [channels, height, width], with height and width divisible by
// the kernel size.
func (m *MaxPool2D) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 3 {
		panic(fmt.Sprintf("maxpool2d: expected 3D input [C,H,W], got shape %v", shape))
	}
	ch, h, w := shape[0], shape[1], shape[2]
	k := m.kernelSize
	if h%k != 0 || w%k != 0 {
		panic(fmt.Sprintf("maxpool2d: window %d does not evenly divide input %v", k, shape))
	}
	m.input = input

	outH := h / k
	outW := w / k
	output := tensor.New(tensor.Shape{ch, outH, outW})

	in := input.Data()
	out := output.Data()
	for c := 0; c < ch; c++ {
		inPlane := c * h * w
		outPlane := c * outH * outW
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				best := math.Inf(-1)
				for bi := 0; bi < k; bi++ {
					row := inPlane + (i*k+bi)*w + j*k
					for bj := 0; bj < k; bj++ {
						if in[row+bj] > best {
							best = in[row+bj]
						}
					}
				}
				out[outPlane+i*outW+j] = best
			}
		}
	}

	return output
}

// Backward routes each upstream gradient scalar to the input position
// that achieved the maximum in its block; every other position in the
// block receives zero.
//
// Ties go to the first occurrence in row-major order. That matches the
// forward maximum exactly, so gradient mass is conserved: the returned
// tensor sums to the same total as the output gradient.
func (m *MaxPool2D) Backward(outputGrad *tensor.Tensor) *tensor.Tensor {
	if m.input == nil {
		panic("maxpool2d: Backward called before Forward")
	}
	shape := m.input.Shape()
	ch, h, w := shape[0], shape[1], shape[2]
	k := m.kernelSize
	outH := h / k
	outW := w / k

	wantShape := tensor.Shape{ch, outH, outW}
	if !outputGrad.Shape().Equal(wantShape) {
		panic(fmt.Sprintf("maxpool2d: expected output gradient shape %v, got %v",
			wantShape, outputGrad.Shape()))
	}

	inputGrad := tensor.New(shape)
	in := m.input.Data()
	grad := outputGrad.Data()
	ig := inputGrad.Data()

	for c := 0; c < ch; c++ {
		inPlane := c * h * w
		outPlane := c * outH * outW
		for i := 0; i < outH; i++ {
			for j := 0; j < outW; j++ {
				// Recompute the argmax; strict > keeps the first
				// occurrence on ties.
				best := math.Inf(-1)
				bestIdx := 0
				for bi := 0; bi < k; bi++ {
					row := inPlane + (i*k+bi)*w + j*k
					for bj := 0; bj < k; bj++ {
						if in[row+bj] > best {
							best = in[row+bj]
							bestIdx = row + bj
						}
					}
				}
				ig[bestIdx] = grad[outPlane+i*outW+j]
			}
		}
	}

	return inputGrad
}

// Parameters returns nil; MaxPool2D has no trainable parameters.
func (m *MaxPool2D) Parameters() []*Parameter {
	return nil
}

// String returns a string representation of the layer.
func (m *MaxPool2D) String() string {
	return fmt.Sprintf("MaxPool2D(kernel_size=%d)", m.kernelSize)
}

// KernelSize returns the pooling window size.
func (m *MaxPool2D) KernelSize() int {
	return m.kernelSize
}

// ComputeOutputSize computes output spatial dimensions for a given
// input size.
//
// Returns: [out_height, out_width].
func (m *MaxPool2D) ComputeOutputSize(inputH, inputW int) [2]int {
	return [2]int{inputH / m.kernelSize, inputW / m.kernelSize}
}
