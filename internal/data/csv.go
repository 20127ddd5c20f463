package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// csvColumns is one label field plus the 784 pixels of a 28x28 image.
const csvColumns = 1 + DigitSide*DigitSide

// LoadCSV loads a digit dataset from a CSV file.
//
// CSV format (Kaggle-style), header row optional:
//
//	label,pixel0,pixel1,...,pixel783
//	5,0,0,12,...,0
//	0,0,0,0,...,0
//
// Each row carries one label (0-9) followed by 784 raw pixel values;
// images come out as 28x28 tensors of raw 0-255 intensities.
//
// Parameters:
//   - filename: path to the CSV file
//   - maxSamples: maximum number of samples to load (0 = load all)
func LoadCSV(filename string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	// Skip the header row when the first field is not a number.
	if _, err := strconv.Atoi(records[0][0]); err != nil {
		records = records[1:]
	}

	// Limit samples if requested
	numSamples := len(records)
	if maxSamples > 0 && numSamples > maxSamples {
		numSamples = maxSamples
		records = records[:numSamples]
	}

	images := make([]*tensor.Tensor, numSamples)
	labels := make([]int, numSamples)

	for i, record := range records {
		if len(record) != csvColumns {
			return nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), csvColumns)
		}

		// Parse label
		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", i+1, err)
		}
		if label < 0 || label > 9 {
			return nil, fmt.Errorf("label out of range [0, 9] at row %d: %d", i+1, label)
		}
		labels[i] = label

		// Parse pixels, keeping the raw 0-255 scale
		img := tensor.New(tensor.Shape{DigitSide, DigitSide})
		pixels := img.Data()
		for j := 0; j < DigitSide*DigitSide; j++ {
			pixel, err := strconv.Atoi(record[j+1])
			if err != nil {
				return nil, fmt.Errorf("invalid pixel at row %d, column %d: %w", i+1, j+1, err)
			}
			pixels[j] = float64(pixel)
		}
		images[i] = img
	}

	return &Dataset{Images: images, Labels: labels, ClassCount: 10}, nil
}
