// Package main provides the Sprout ML Framework CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/sprout-ml/sprout/internal/config"
	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Sprout ML Framework %s\n", version)
			return
		case "train":
			if err := runTrain(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "sprout train: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Sprout ML Framework - CNNs from scratch in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Run a training exercise (-config run.yaml)")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML run configuration")
	dataDir := fs.String("data", "", "Dataset directory (overrides config)")
	exercise := fs.String("exercise", "", "Exercise to run: digits or weather (overrides config)")
	epochs := fs.Int("epochs", 0, "Number of epochs (overrides config)")
	lr := fs.Float64("lr", 0, "Learning rate (overrides config)")
	trainRatio := fs.Float64("ratio", 0, "Training split ratio (overrides config)")
	seed := fs.Int64("seed", 0, "Random seed (overrides config)")
	logEvery := fs.Int("log", 0, "Steps between progress prints (overrides config)")
	optimizer := fs.String("optimizer", "", "Optimizer: sgd or adam (overrides config)")
	limit := fs.Int("limit", 0, "Max samples to load, 0 = all (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	run := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		run = loaded
	}
	run.ApplyOverrides(config.Overrides{
		Dataset:    *dataDir,
		Exercise:   *exercise,
		Epochs:     *epochs,
		LR:         *lr,
		TrainRatio: *trainRatio,
		Seed:       *seed,
		LogEvery:   *logEvery,
		Optimizer:  *optimizer,
		Limit:      *limit,
	})
	if err := run.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(run.Seed))

	ds, err := loadDataset(run, rng)
	if err != nil {
		return err
	}

	model := buildModel(run.Exercise, ds.ClassCount, rng)
	opt := buildOptimizer(run, model.Parameters())

	fmt.Printf("Sprout %s exercise: %d samples, %d classes\n", run.Exercise, ds.Len(), ds.ClassCount)
	fmt.Printf("Model: %v\n", model)
	fmt.Printf("Optimizer: %s (lr=%g), epochs: %d, train ratio: %g, seed: %d\n",
		run.Optimizer, opt.GetLR(), run.Epochs, run.TrainRatio, run.Seed)

	result, err := train.Fit(model, opt, ds, train.Config{
		Epochs:     run.Epochs,
		TrainRatio: run.TrainRatio,
		LogEvery:   run.LogEvery,
		Seed:       run.Seed,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Final validation: loss %.3f, accuracy %.2f%%\n", result.ValLoss, result.ValAccuracy*100)
	return nil
}

// loadDataset reads the exercise's dataset from run.Dataset, falling
// back to the synthetic generators when no directory is configured.
func loadDataset(run *config.Run, rng *rand.Rand) (*data.Dataset, error) {
	fallback := run.Limit
	if fallback <= 0 {
		fallback = 2000
	}

	switch run.Exercise {
	case config.ExerciseWeather:
		if run.Dataset == "" {
			return data.SyntheticWeather(fallback, rng), nil
		}
		ds, err := data.LoadColorDir(run.Dataset, true, run.Limit)
		if err != nil {
			return nil, err
		}
		return data.RemapWeather(ds), nil
	default:
		if run.Dataset == "" {
			return data.SyntheticDigits(fallback, rng), nil
		}
		return data.LoadIDXDir(run.Dataset, true, run.Limit)
	}
}

// buildModel assembles the exercise's network.
func buildModel(exercise string, classes int, rng *rand.Rand) *nn.Sequential {
	if exercise == config.ExerciseWeather {
		// 32x32 -> conv 30x30 -> pool 15x15
		return nn.NewSequential(
			nn.NewConv2D(16, 3, rng),
			nn.NewReLU(),
			nn.NewMaxPool2D(2),
			nn.NewFlatten(),
			nn.NewLinear(15*15*16, classes, rng),
			nn.NewSoftmax(),
		)
	}

	// 28x28 -> conv 26x26 -> pool 13x13
	return nn.NewSequential(
		nn.NewConv2D(8, 3, rng),
		nn.NewReLU(),
		nn.NewMaxPool2D(2),
		nn.NewFlatten(),
		nn.NewLinear(13*13*8, classes, rng),
		nn.NewSoftmax(),
	)
}

// buildOptimizer binds the configured update rule to the model
// parameters.
func buildOptimizer(run *config.Run, params []*nn.Parameter) optim.Optimizer {
	if run.Optimizer == config.OptimizerAdam {
		return optim.NewAdam(params, optim.AdamConfig{LR: run.LR})
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: run.LR})
}
