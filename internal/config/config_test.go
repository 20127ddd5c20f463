package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	run := Default()

	require.NoError(t, run.Validate())
	assert.Equal(t, ExerciseDigits, run.Exercise)
	assert.Equal(t, 3, run.Epochs)
	assert.Equal(t, 0.005, run.LR)
	assert.Equal(t, 0.8, run.TrainRatio)
	assert.Equal(t, int64(40), run.Seed)
	assert.Equal(t, OptimizerSGD, run.Optimizer)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
dataset: ./data
exercise: weather
epochs: 5
lr: 0.001
train_ratio: 0.9
seed: 7
log_every: 200
optimizer: adam
limit: 1000
`)

	run, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./data", run.Dataset)
	assert.Equal(t, ExerciseWeather, run.Exercise)
	assert.Equal(t, 5, run.Epochs)
	assert.Equal(t, 0.001, run.LR)
	assert.Equal(t, 0.9, run.TrainRatio)
	assert.Equal(t, int64(7), run.Seed)
	assert.Equal(t, 200, run.LogEvery)
	assert.Equal(t, OptimizerAdam, run.Optimizer)
	assert.Equal(t, 1000, run.Limit)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "epochs: 10\n")

	run, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, run.Epochs)
	assert.Equal(t, ExerciseDigits, run.Exercise, "unset keys keep their defaults")
	assert.Equal(t, 0.005, run.LR)
}

func TestLoadEmptyConfigIsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	run, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), run)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "unknown_key", contents: "batch_size: 32\n"},
		{name: "bad_value_type", contents: "epochs: lots\n"},
		{name: "invalid_after_parse", contents: "epochs: -1\n"},
		{name: "bad_exercise", contents: "exercise: clouds\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Run)
		wantErr string
	}{
		{name: "zero_epochs", mutate: func(r *Run) { r.Epochs = 0 }, wantErr: "epochs must be > 0"},
		{name: "negative_lr", mutate: func(r *Run) { r.LR = -0.1 }, wantErr: "lr must be > 0"},
		{name: "ratio_above_one", mutate: func(r *Run) { r.TrainRatio = 1.5 }, wantErr: "train_ratio"},
		{name: "zero_log_every", mutate: func(r *Run) { r.LogEvery = 0 }, wantErr: "log_every"},
		{name: "bad_optimizer", mutate: func(r *Run) { r.Optimizer = "rmsprop" }, wantErr: "unknown optimizer"},
		{name: "negative_limit", mutate: func(r *Run) { r.Limit = -5 }, wantErr: "limit"},
		{name: "bad_exercise", mutate: func(r *Run) { r.Exercise = "storms" }, wantErr: "unknown exercise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := Default()
			tt.mutate(run)

			err := run.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	run := Default()

	run.ApplyOverrides(Overrides{
		Dataset:   "./cifar",
		Exercise:  ExerciseWeather,
		Epochs:    7,
		LR:        0.001,
		Optimizer: OptimizerAdam,
		Seed:      99,
	})

	assert.Equal(t, "./cifar", run.Dataset)
	assert.Equal(t, ExerciseWeather, run.Exercise)
	assert.Equal(t, 7, run.Epochs)
	assert.Equal(t, 0.001, run.LR)
	assert.Equal(t, OptimizerAdam, run.Optimizer)
	assert.Equal(t, int64(99), run.Seed)
	assert.Equal(t, 0.8, run.TrainRatio, "zero overrides leave values untouched")
	assert.Equal(t, 100, run.LogEvery)
}
