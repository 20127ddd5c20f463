// Copyright 2025 Sprout ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides the public API for datasets in the Sprout ML
// framework.
//
// The package re-exports dataset containers, the train/validation
// splitter, normalization, and the file loaders for the digit and
// weather exercises. Datasets hold raw 0-255 intensities; Normalize
// maps a sample to a zero-centered range right before the forward
// pass.
package data

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Dataset pairs images with integer class labels.
type Dataset = data.Dataset

// Canonical image sides for the two exercises.
const (
	DigitSide = data.DigitSide
	ColorSide = data.ColorSide
)

// WeatherClasses names the five weather categories.
var WeatherClasses = data.WeatherClasses

// Normalize maps raw intensities in [0, 255] to a zero-centered range
// by x/255 - 0.5, returning a new tensor.
func Normalize(img *tensor.Tensor) *tensor.Tensor {
	return data.Normalize(img)
}

// Split partitions [0, n) into train indices of size floor(n*ratio)
// sampled without replacement and the complement as validation.
func Split(n int, ratio float64, rng *rand.Rand) (train, val []int) {
	return data.Split(n, ratio, rng)
}

// ShuffleIndices permutes idx in place.
func ShuffleIndices(idx []int, rng *rand.Rand) {
	data.ShuffleIndices(idx, rng)
}

// Loaders

// LoadIDX reads big-endian IDX image and label files, transparently
// gunzipping .gz paths.
func LoadIDX(imageFile, labelFile string, maxSamples int) (*Dataset, error) {
	return data.LoadIDX(imageFile, labelFile, maxSamples)
}

// LoadIDXDir reads the conventional IDX file pair from a directory.
func LoadIDXDir(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	return data.LoadIDXDir(dataDir, train, maxSamples)
}

// LoadCSV reads label,p0,p1,... rows into a dataset.
func LoadCSV(filename string, maxSamples int) (*Dataset, error) {
	return data.LoadCSV(filename, maxSamples)
}

// LoadColorBatch reads 3073-byte label+RGB records, converting each
// image to 32x32 luminance.
func LoadColorBatch(path string, maxSamples int) (*Dataset, error) {
	return data.LoadColorBatch(path, maxSamples)
}

// LoadColorDir reads the conventional color batch files from a
// directory.
func LoadColorDir(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	return data.LoadColorDir(dataDir, train, maxSamples)
}

// Synthetic fallbacks

// SyntheticDigits renders n procedurally generated digit samples.
func SyntheticDigits(n int, rng *rand.Rand) *Dataset {
	return data.SyntheticDigits(n, rng)
}

// SyntheticWeather renders n procedurally generated weather samples.
func SyntheticWeather(n int, rng *rand.Rand) *Dataset {
	return data.SyntheticWeather(n, rng)
}

// Weather relabeling

// MapWeatherLabel maps a source label 0-9 to its weather class 0-4.
func MapWeatherLabel(label int) int {
	return data.MapWeatherLabel(label)
}

// RemapWeather returns a view of ds with labels mapped to the five
// weather classes.
func RemapWeather(ds *Dataset) *Dataset {
	return data.RemapWeather(ds)
}
