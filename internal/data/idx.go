package data

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// IDX magic numbers (big-endian).
const (
	idxImageMagic = 2051 // 0x00000803
	idxLabelMagic = 2049 // 0x00000801
)

// Standard file names inside an IDX dataset directory.
const (
	trainImagesFile = "train-images-idx3-ubyte"
	trainLabelsFile = "train-labels-idx1-ubyte"
	testImagesFile  = "t10k-images-idx3-ubyte"
	testLabelsFile  = "t10k-labels-idx1-ubyte"
)

// LoadIDX loads an image/label file pair in IDX format into a Dataset
// of raw 0-255 intensities.
//
// Parameters:
//   - imageFile: path to the IDX image file (".gz" accepted)
//   - labelFile: path to the IDX label file (".gz" accepted)
//   - maxSamples: maximum number of samples to load (0 = load all)
func LoadIDX(imageFile, labelFile string, maxSamples int) (*Dataset, error) {
	imagesRaw, rows, cols, err := readIDXImages(imageFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	labelsRaw, err := readIDXLabels(labelFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if len(imagesRaw) != len(labelsRaw) {
		return nil, fmt.Errorf("image count (%d) != label count (%d)", len(imagesRaw), len(labelsRaw))
	}

	numSamples := len(imagesRaw)
	if maxSamples > 0 && numSamples > maxSamples {
		numSamples = maxSamples
	}

	images := make([]*tensor.Tensor, numSamples)
	labels := make([]int, numSamples)

	for i := 0; i < numSamples; i++ {
		img := tensor.New(tensor.Shape{rows, cols})
		pixels := img.Data()
		for j, b := range imagesRaw[i] {
			pixels[j] = float64(b)
		}
		images[i] = img
		labels[i] = int(labelsRaw[i])
	}

	return &Dataset{Images: images, Labels: labels, ClassCount: 10}, nil
}

// LoadIDXDir loads the train or test split from a directory holding
// the standard IDX file names.
//
// Expected files in dataDir:
//   - train-images-idx3-ubyte (or t10k-images-idx3-ubyte for test)
//   - train-labels-idx1-ubyte (or t10k-labels-idx1-ubyte for test)
//
// Gzipped variants (same name plus ".gz") are picked up automatically
// when the uncompressed files are absent.
func LoadIDXDir(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	imageFile, labelFile := testImagesFile, testLabelsFile
	if train {
		imageFile, labelFile = trainImagesFile, trainLabelsFile
	}

	return LoadIDX(
		findDataFile(filepath.Join(dataDir, imageFile)),
		findDataFile(filepath.Join(dataDir, labelFile)),
		maxSamples,
	)
}

// readIDXImages reads an IDX image file.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
func readIDXImages(filename string) ([][]byte, int, int, error) {
	file, err := openDataFile(filename)
	if err != nil {
		return nil, 0, 0, err
	}
	defer file.Close()

	// Read magic number
	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxImageMagic {
		return nil, 0, 0, fmt.Errorf("invalid magic number: got %d, want %d", magic, idxImageMagic)
	}

	// Read dimensions
	var numImages, numRows, numCols uint32
	if err := binary.Read(file, binary.BigEndian, &numImages); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(file, binary.BigEndian, &numRows); err != nil {
		return nil, 0, 0, err
	}
	if err := binary.Read(file, binary.BigEndian, &numCols); err != nil {
		return nil, 0, 0, err
	}

	imageSize := int(numRows * numCols)
	images := make([][]byte, numImages)

	// Read all images
	for i := range images {
		images[i] = make([]byte, imageSize)
		if _, err := io.ReadFull(file, images[i]); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read image %d: %w", i, err)
		}
	}

	return images, int(numRows), int(numCols), nil
}

// readIDXLabels reads an IDX label file.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func readIDXLabels(filename string) ([]byte, error) {
	file, err := openDataFile(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Read magic number
	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxLabelMagic {
		return nil, fmt.Errorf("invalid magic number: got %d, want %d", magic, idxLabelMagic)
	}

	// Read number of labels
	var numLabels uint32
	if err := binary.Read(file, binary.BigEndian, &numLabels); err != nil {
		return nil, err
	}

	// Read all labels
	labels := make([]byte, numLabels)
	if _, err := io.ReadFull(file, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return labels, nil
}

// openDataFile opens path for reading, transparently decompressing
// files with a .gz suffix.
func openDataFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	return &gzipFile{Reader: gz, file: file}, nil
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// findDataFile returns path when it exists, otherwise path + ".gz".
func findDataFile(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return path + ".gz"
}
