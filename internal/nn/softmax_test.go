package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestSoftmaxIsDistribution(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{"uniform", []float64{0, 0, 0, 0}},
		{"mixed", []float64{1, -2, 0.5, 3}},
		{"large magnitude", []float64{1000, 1001, 999}},
		{"very negative", []float64{-1000, -1000.5, -999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			softmax := NewSoftmax()
			input := tensor.FromSlice(tensor.Shape{len(tt.in), 1}, tt.in)

			output := softmax.Forward(input)

			for _, v := range output.Data() {
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("output entry %v is not a valid probability", v)
				}
			}
			assert.InDelta(t, 1.0, floats.Sum(output.Data()), 1e-12, "probabilities must sum to 1")
		})
	}
}

func TestSoftmaxKnownValues(t *testing.T) {
	softmax := NewSoftmax()
	input := tensor.FromSlice(tensor.Shape{2, 1}, []float64{0, 0})
	output := softmax.Forward(input)
	assert.InDelta(t, 0.5, output.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, output.At(1, 0), 1e-12)

	// softmax(log 1, log 2, log 3) = (1/6, 2/6, 3/6).
	input = tensor.FromSlice(tensor.Shape{3, 1}, []float64{math.Log(1), math.Log(2), math.Log(3)})
	output = softmax.Forward(input)
	assert.InDelta(t, 1.0/6, output.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0/6, output.At(1, 0), 1e-12)
	assert.InDelta(t, 3.0/6, output.At(2, 0), 1e-12)
}

func TestSoftmaxBackwardKnownValues(t *testing.T) {
	softmax := NewSoftmax()
	input := tensor.FromSlice(tensor.Shape{2, 1}, []float64{0, 0})
	softmax.Forward(input) // p = (0.5, 0.5)

	outputGrad := tensor.FromSlice(tensor.Shape{2, 1}, []float64{4, 0})
	inputGrad := softmax.Backward(outputGrad)

	// p⊙δ − (pᵀδ)·p = (2, 0) − 2·(0.5, 0.5) = (1, −1).
	assert.InDelta(t, 1.0, inputGrad.At(0, 0), 1e-12)
	assert.InDelta(t, -1.0, inputGrad.At(1, 0), 1e-12)

	// The Jacobian rows sum to zero, so the input gradient always
	// sums to zero.
	assert.InDelta(t, 0.0, floats.Sum(inputGrad.Data()), 1e-12)
}

func TestSoftmaxBackwardGradSumsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	softmax := NewSoftmax()
	input := tensor.Randn(tensor.Shape{10, 1}, rng)
	output := softmax.Forward(input)

	inputGrad := softmax.Backward(tensor.Randn(output.Shape(), rng))
	assert.InDelta(t, 0.0, floats.Sum(inputGrad.Data()), 1e-9)
}

func TestSoftmaxPanics(t *testing.T) {
	softmax := NewSoftmax()
	require.Panics(t, func() { softmax.Forward(tensor.New(tensor.Shape{4})) }, "non-column input must panic")
	require.Panics(t, func() { softmax.Forward(tensor.New(tensor.Shape{2, 3})) }, "matrix input must panic")
	require.Panics(t, func() { softmax.Backward(tensor.New(tensor.Shape{4, 1})) }, "Backward before Forward must panic")

	softmax.Forward(tensor.New(tensor.Shape{4, 1}))
	require.Panics(t, func() { softmax.Backward(tensor.New(tensor.Shape{3, 1})) }, "mismatched gradient shape must panic")
}
