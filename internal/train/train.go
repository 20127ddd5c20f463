// Package train drives per-sample training of sequential models:
// single steps, forward-only evaluation, and the epoch loop with a
// rolling progress printout.
//
// The whole package is strictly synchronous. A layer caches its
// forward activations for the matching backward call, so one sample's
// forward/backward/update must complete before the next begins;
// everything here runs on the calling goroutine and spawns nothing.
package train

import (
	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Step trains on a single sample: normalize the raw image, forward
// through the model, seed the loss gradient, backpropagate, and apply
// one optimizer update.
//
// It returns the sample's loss and whether the pre-update model
// predicted the label.
func Step(model *nn.Sequential, opt optim.Optimizer, img *tensor.Tensor, label int) (loss float64, correct bool) {
	probs := model.Forward(data.Normalize(img))

	criterion := nn.NewNLLLoss()
	loss = criterion.Loss(probs, label)
	correct = nn.Argmax(probs) == label

	model.Backward(criterion.Grad(probs, label))
	opt.Step()
	opt.ZeroGrad()

	return loss, correct
}

// Evaluate runs a forward-only pass over the samples named by
// indices, returning mean loss and accuracy. No gradients accumulate
// and no parameters change.
func Evaluate(model *nn.Sequential, ds *data.Dataset, indices []int) (meanLoss, accuracy float64) {
	if len(indices) == 0 {
		return 0, 0
	}

	criterion := nn.NewNLLLoss()
	var window Metrics

	for _, idx := range indices {
		probs := model.Forward(data.Normalize(ds.Images[idx]))
		label := ds.Labels[idx]
		window.Record(criterion.Loss(probs, label), nn.Argmax(probs) == label)
	}

	return window.Snapshot()
}
