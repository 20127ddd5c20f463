package train

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
)

// Config captures the knobs required by Fit.
type Config struct {
	Epochs     int     // passes over the training split
	TrainRatio float64 // fraction of samples trained on, the rest validates
	LogEvery   int     // steps between rolling progress prints (0 = 100)
	Seed       int64   // seeds the split and the per-epoch shuffles
}

// Result carries the final validation metrics of a run.
type Result struct {
	ValLoss     float64
	ValAccuracy float64
}

// Fit trains model on ds for cfg.Epochs passes.
//
// Each epoch shuffles the training indices, runs Step once per
// sample with a rolling loss/accuracy printout every cfg.LogEvery
// steps, then evaluates the held-out split. With TrainRatio 1 there
// is no held-out split and the result stays zero.
func Fit(model *nn.Sequential, opt optim.Optimizer, ds *data.Dataset, cfg Config) (Result, error) {
	if cfg.Epochs <= 0 {
		return Result{}, errors.New("train: epochs must be > 0")
	}
	if cfg.TrainRatio <= 0 || cfg.TrainRatio > 1 {
		return Result{}, fmt.Errorf("train: train ratio %v outside (0, 1]", cfg.TrainRatio)
	}
	if ds.Len() == 0 {
		return Result{}, errors.New("train: dataset is empty")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 100
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	trainIdx, valIdx := data.Split(ds.Len(), cfg.TrainRatio, rng)

	var result Result
	var window Metrics

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		fmt.Printf("--- Epoch %d ---\n", epoch+1)

		data.ShuffleIndices(trainIdx, rng)

		for i, idx := range trainIdx {
			loss, correct := Step(model, opt, ds.Images[idx], ds.Labels[idx])
			window.Record(loss, correct)

			if (i+1)%cfg.LogEvery == 0 {
				meanLoss, acc := window.Snapshot()
				fmt.Printf("[Step %d] Past %d steps: Average Loss %.3f | Accuracy: %.0f%%\n",
					i+1, cfg.LogEvery, meanLoss, acc*100)
			}
		}
		// Drop any partial window so it does not bleed into the next
		// epoch's printout.
		window.Snapshot()

		if len(valIdx) > 0 {
			valLoss, valAcc := Evaluate(model, ds, valIdx)
			result = Result{ValLoss: valLoss, ValAccuracy: valAcc}
			fmt.Printf("Validation: Average Loss %.3f | Accuracy: %.2f%%\n", valLoss, valAcc*100)
		}
	}

	return result, nil
}
