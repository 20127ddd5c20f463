package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestMaxPool2DForwardKnownValues(t *testing.T) {
	pool := NewMaxPool2D(2)
	input := tensor.FromSlice(tensor.Shape{1, 4, 4}, []float64{
		1, 3, 2, 4,
		5, 6, 7, 8,
		-1, -2, -3, -4,
		0, 1, 2, 3,
	})

	output := pool.Forward(input)

	require.True(t, output.Shape().Equal(tensor.Shape{1, 2, 2}))
	assert.Equal(t, []float64{6, 8, 1, 3}, output.Data())
}

func TestMaxPool2DMultiChannel(t *testing.T) {
	pool := NewMaxPool2D(2)
	input := tensor.FromSlice(tensor.Shape{2, 2, 2}, []float64{
		1, 2,
		3, 4,

		-1, -2,
		-3, -4,
	})

	output := pool.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{2, 1, 1}))
	assert.Equal(t, []float64{4, -1}, output.Data())
}

func TestMaxPool2DBackwardRouting(t *testing.T) {
	pool := NewMaxPool2D(2)
	input := tensor.FromSlice(tensor.Shape{1, 4, 4}, []float64{
		1, 3, 2, 4,
		5, 6, 7, 8,
		-1, -2, -3, -4,
		0, 1, 2, 3,
	})
	pool.Forward(input)

	outputGrad := tensor.FromSlice(tensor.Shape{1, 2, 2}, []float64{10, 20, 30, 40})
	inputGrad := pool.Backward(outputGrad)

	require.True(t, inputGrad.Shape().Equal(input.Shape()))

	// Each upstream scalar lands exactly on its block's maximum.
	want := []float64{
		0, 0, 0, 0,
		0, 10, 0, 20,
		0, 0, 0, 0,
		0, 30, 0, 40,
	}
	assert.Equal(t, want, inputGrad.Data())
}

func TestMaxPool2DGradientMassConserved(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	pool := NewMaxPool2D(2)

	input := tensor.Randn(tensor.Shape{3, 8, 8}, rng)
	output := pool.Forward(input)

	outputGrad := tensor.Randn(output.Shape(), rng)
	inputGrad := pool.Backward(outputGrad)

	// All mass is routed to argmax positions, none lost or duplicated.
	assert.InDelta(t, floats.Sum(outputGrad.Data()), floats.Sum(inputGrad.Data()), 1e-12)
}

func TestMaxPool2DTieBreaksToFirstOccurrence(t *testing.T) {
	pool := NewMaxPool2D(2)
	input := tensor.FromSlice(tensor.Shape{1, 2, 2}, []float64{
		7, 7,
		7, 7,
	})
	pool.Forward(input)

	inputGrad := pool.Backward(tensor.FromSlice(tensor.Shape{1, 1, 1}, []float64{5}))

	// Equal maxima: the first position in row-major order wins.
	assert.Equal(t, []float64{5, 0, 0, 0}, inputGrad.Data())
}

func TestMaxPool2DPanics(t *testing.T) {
	assert.Panics(t, func() { NewMaxPool2D(0) })

	pool := NewMaxPool2D(2)
	assert.Panics(t, func() { pool.Forward(tensor.New(tensor.Shape{4, 4})) }, "2D input must panic")
	assert.Panics(t, func() { pool.Forward(tensor.New(tensor.Shape{1, 5, 4})) }, "indivisible height must panic")
	assert.Panics(t, func() { pool.Backward(tensor.New(tensor.Shape{1, 2, 2})) }, "Backward before Forward must panic")

	pool.Forward(tensor.New(tensor.Shape{1, 4, 4}))
	assert.Panics(t, func() { pool.Backward(tensor.New(tensor.Shape{1, 3, 2})) }, "mismatched gradient shape must panic")
}
