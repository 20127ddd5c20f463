package nn

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// ScaledNormal initializes a tensor with values drawn from a standard
// normal distribution divided by scale.
//
// Convolution kernels use scale = kernelSize², which keeps early
// activations small enough that softmax outputs stay well-conditioned.
//
// The generator is passed explicitly so initialization is reproducible
// under a fixed seed.
func ScaledNormal(shape tensor.Shape, scale float64, rng *rand.Rand) *tensor.Tensor {
	t := tensor.Randn(shape, rng)
	data := t.Data()
	for i := range data {
		data[i] /= scale
	}
	return t
}

// Uniform initializes a tensor with values drawn uniformly from
// [lo, hi).
//
// Linear layers use Uniform(shape, -0.5, 0.5, rng) for both weights
// and biases.
func Uniform(shape tensor.Shape, lo, hi float64, rng *rand.Rand) *tensor.Tensor {
	return tensor.Rand(shape, lo, hi, rng)
}
