package data

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Color batch record layout: one label byte followed by three
// row-major 32x32 channel planes (red, green, blue).
const (
	colorChannels   = 3
	colorPlane      = ColorSide * ColorSide
	colorRecordSize = 1 + colorChannels*colorPlane
)

// Luminance weights for collapsing RGB to a single channel (ITU-R
// BT.601).
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// LoadColorBatch loads one binary batch file of 32x32 RGB images into
// a Dataset of single-channel luminance tensors.
//
// Batch file format (the classic CIFAR-10 layout): consecutive
// 3073-byte records, each a label byte (0-9) followed by 1024 red,
// 1024 green, and 1024 blue bytes in row-major order. Color is
// collapsed to luminance (0.299R + 0.587G + 0.114B) at load, keeping
// the raw 0-255 scale.
//
// Parameters:
//   - path: path to the batch file (".gz" accepted)
//   - maxSamples: maximum number of samples to load (0 = load all)
func LoadColorBatch(path string, maxSamples int) (*Dataset, error) {
	file, err := openDataFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	if len(raw) == 0 || len(raw)%colorRecordSize != 0 {
		return nil, fmt.Errorf("batch size %d is not a multiple of %d-byte records", len(raw), colorRecordSize)
	}

	numSamples := len(raw) / colorRecordSize
	if maxSamples > 0 && numSamples > maxSamples {
		numSamples = maxSamples
	}

	images := make([]*tensor.Tensor, numSamples)
	labels := make([]int, numSamples)

	for i := 0; i < numSamples; i++ {
		record := raw[i*colorRecordSize : (i+1)*colorRecordSize]

		label := int(record[0])
		if label > 9 {
			return nil, fmt.Errorf("invalid label at record %d: %d", i, label)
		}
		labels[i] = label

		r := record[1 : 1+colorPlane]
		g := record[1+colorPlane : 1+2*colorPlane]
		b := record[1+2*colorPlane:]

		img := tensor.New(tensor.Shape{ColorSide, ColorSide})
		pixels := img.Data()
		for j := 0; j < colorPlane; j++ {
			pixels[j] = lumaRed*float64(r[j]) + lumaGreen*float64(g[j]) + lumaBlue*float64(b[j])
		}
		images[i] = img
	}

	return &Dataset{Images: images, Labels: labels, ClassCount: 10}, nil
}

// LoadColorDir loads the train or test split from a directory holding
// the standard batch file names.
//
// Expected files in dataDir:
//   - data_batch_1.bin ... data_batch_5.bin for the training split
//   - test_batch.bin for the test split
//
// Gzipped variants (same name plus ".gz") are picked up automatically
// when the uncompressed files are absent.
func LoadColorDir(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	var files []string
	if train {
		for i := 1; i <= 5; i++ {
			files = append(files, fmt.Sprintf("data_batch_%d.bin", i))
		}
	} else {
		files = []string{"test_batch.bin"}
	}

	all := &Dataset{ClassCount: 10}
	for _, name := range files {
		remaining := 0
		if maxSamples > 0 {
			remaining = maxSamples - all.Len()
			if remaining <= 0 {
				break
			}
		}

		batch, err := LoadColorBatch(findDataFile(filepath.Join(dataDir, name)), remaining)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		all.Images = append(all.Images, batch.Images...)
		all.Labels = append(all.Labels, batch.Labels...)
	}

	return all, nil
}
