// Copyright 2025 Sprout ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the public API for the training-loop driver
// in the Sprout ML framework.
//
// Training is strictly synchronous: one sample's forward, backward,
// and parameter update complete before the next sample begins, because
// layers cache only their most recent activation.
package train

import (
	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/tensor"
	"github.com/sprout-ml/sprout/internal/train"
)

// Config captures the knobs required by Fit.
type Config = train.Config

// Result carries the final validation metrics of a run.
type Result = train.Result

// Metrics is a rolling loss/accuracy window.
type Metrics = train.Metrics

// Step runs one sample through a full train step: normalize, forward,
// loss, backward, optimizer update.
func Step(model *nn.Sequential, opt optim.Optimizer, img *tensor.Tensor, label int) (loss float64, correct bool) {
	return train.Step(model, opt, img, label)
}

// Evaluate runs a forward-only pass over the given indices, returning
// mean loss and accuracy.
func Evaluate(model *nn.Sequential, ds *data.Dataset, indices []int) (meanLoss, accuracy float64) {
	return train.Evaluate(model, ds, indices)
}

// Fit trains model on ds per cfg and returns the final validation
// metrics.
func Fit(model *nn.Sequential, opt optim.Optimizer, ds *data.Dataset, cfg Config) (Result, error) {
	return train.Fit(model, opt, ds, cfg)
}
