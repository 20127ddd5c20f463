// Package config defines the YAML run configuration consumed by the
// sprout CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Exercise names.
const (
	ExerciseDigits  = "digits"
	ExerciseWeather = "weather"
)

// Optimizer names.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Run captures the runtime knobs for a training run.
type Run struct {
	Dataset    string  `yaml:"dataset"`     // dataset directory; empty = synthetic fallback
	Exercise   string  `yaml:"exercise"`    // digits or weather
	Epochs     int     `yaml:"epochs"`      // passes over the training split
	LR         float64 `yaml:"lr"`          // learning rate
	TrainRatio float64 `yaml:"train_ratio"` // fraction of samples trained on
	Seed       int64   `yaml:"seed"`        // seeds init, split, and shuffles
	LogEvery   int     `yaml:"log_every"`   // steps between progress prints
	Optimizer  string  `yaml:"optimizer"`   // sgd or adam
	Limit      int     `yaml:"limit"`       // cap on samples loaded (0 = all)
}

// Default returns the digits exercise defaults.
func Default() *Run {
	return &Run{
		Exercise:   ExerciseDigits,
		Epochs:     3,
		LR:         0.005,
		TrainRatio: 0.8,
		Seed:       40,
		LogEvery:   100,
		Optimizer:  OptimizerSGD,
	}
}

// Overrides captures CLI-supplied values; zero fields leave the run
// unchanged.
type Overrides struct {
	Dataset    string
	Exercise   string
	Epochs     int
	LR         float64
	TrainRatio float64
	Seed       int64
	LogEvery   int
	Optimizer  string
	Limit      int
}

// Load reads a Run from a YAML file. Keys left unset keep their
// Default values; unknown keys are rejected. The result is validated
// before returning.
func Load(path string) (*Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}

	run := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(run); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

// ApplyOverrides updates r using any non-zero override.
func (r *Run) ApplyOverrides(o Overrides) {
	if o.Dataset != "" {
		r.Dataset = o.Dataset
	}
	if o.Exercise != "" {
		r.Exercise = o.Exercise
	}
	if o.Epochs > 0 {
		r.Epochs = o.Epochs
	}
	if o.LR > 0 {
		r.LR = o.LR
	}
	if o.TrainRatio > 0 {
		r.TrainRatio = o.TrainRatio
	}
	if o.Seed != 0 {
		r.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		r.LogEvery = o.LogEvery
	}
	if o.Optimizer != "" {
		r.Optimizer = o.Optimizer
	}
	if o.Limit > 0 {
		r.Limit = o.Limit
	}
}

// Validate verifies the run is executable.
func (r *Run) Validate() error {
	if r == nil {
		return errors.New("config: run is nil")
	}
	switch r.Exercise {
	case ExerciseDigits, ExerciseWeather:
	default:
		return fmt.Errorf("config: unknown exercise %q", r.Exercise)
	}
	if r.Epochs <= 0 {
		return fmt.Errorf("config: epochs must be > 0 (got %d)", r.Epochs)
	}
	if r.LR <= 0 {
		return fmt.Errorf("config: lr must be > 0 (got %g)", r.LR)
	}
	if r.TrainRatio <= 0 || r.TrainRatio > 1 {
		return fmt.Errorf("config: train_ratio must be in (0, 1] (got %g)", r.TrainRatio)
	}
	if r.LogEvery <= 0 {
		return fmt.Errorf("config: log_every must be > 0 (got %d)", r.LogEvery)
	}
	switch r.Optimizer {
	case OptimizerSGD, OptimizerAdam:
	default:
		return fmt.Errorf("config: unknown optimizer %q", r.Optimizer)
	}
	if r.Limit < 0 {
		return fmt.Errorf("config: limit must be >= 0 (got %d)", r.Limit)
	}
	return nil
}
