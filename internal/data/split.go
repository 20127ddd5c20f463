package data

import (
	"fmt"
	"math/rand"
)

// Split partitions the sample indices [0, n) into a training set of
// exactly floor(n*ratio) indices drawn uniformly without replacement
// and a validation set holding the rest.
//
// The two slices are disjoint and together cover [0, n). Split panics
// when n <= 0 or ratio lies outside (0, 1].
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	train, val := data.Split(ds.Len(), 0.8, rng)
func Split(n int, ratio float64, rng *rand.Rand) (train, val []int) {
	if n <= 0 {
		panic(fmt.Sprintf("data: cannot split %d samples", n))
	}
	if ratio <= 0 || ratio > 1 {
		panic(fmt.Sprintf("data: split ratio %v outside (0, 1]", ratio))
	}

	perm := rng.Perm(n)
	cut := int(float64(n) * ratio)
	return perm[:cut], perm[cut:]
}

// ShuffleIndices permutes idx in place. Call it once per epoch so
// every pass visits the training samples in a fresh order.
func ShuffleIndices(idx []int, rng *rand.Rand) {
	rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
}
