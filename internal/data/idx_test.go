package data

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func idxImageBytes(images [][]byte, rows, cols int) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{idxImageMagic, uint32(len(images)), uint32(rows), uint32(cols)} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	for _, img := range images {
		buf.Write(img)
	}
	return buf.Bytes()
}

func idxLabelBytes(labels []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{idxLabelMagic, uint32(len(labels))} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(labels)
	return buf.Bytes()
}

// writeIDXFixture writes an IDX image/label file pair under dir and
// returns the two paths.
func writeIDXFixture(t *testing.T, dir string, images [][]byte, rows, cols int, labels []byte) (string, string) {
	t.Helper()

	imgPath := filepath.Join(dir, trainImagesFile)
	lblPath := filepath.Join(dir, trainLabelsFile)
	require.NoError(t, os.WriteFile(imgPath, idxImageBytes(images, rows, cols), 0o644))
	require.NoError(t, os.WriteFile(lblPath, idxLabelBytes(labels), 0o644))
	return imgPath, lblPath
}

func writeGzip(t *testing.T, path string, payload []byte) {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(payload)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLoadIDXRoundTrip(t *testing.T) {
	images := [][]byte{
		{0, 64, 128, 255},
		{10, 20, 30, 40},
		{5, 5, 5, 5},
	}
	imgPath, lblPath := writeIDXFixture(t, t.TempDir(), images, 2, 2, []byte{3, 1, 4})

	ds, err := LoadIDX(imgPath, lblPath, 0)
	require.NoError(t, err)

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 10, ds.ClassCount)
	assert.Equal(t, []int{3, 1, 4}, ds.Labels)
	require.True(t, ds.Images[0].Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{0, 64, 128, 255}, ds.Images[0].Data(), "pixels stay on the raw 0-255 scale")
	assert.Equal(t, 40.0, ds.Images[1].At(1, 1))
}

func TestLoadIDXMaxSamples(t *testing.T) {
	images := [][]byte{{1}, {2}, {3}}
	imgPath, lblPath := writeIDXFixture(t, t.TempDir(), images, 1, 1, []byte{0, 1, 2})

	ds, err := LoadIDX(imgPath, lblPath, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []int{0, 1}, ds.Labels)
}

func TestLoadIDXGzip(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, trainImagesFile+".gz")
	lblPath := filepath.Join(dir, trainLabelsFile+".gz")
	writeGzip(t, imgPath, idxImageBytes([][]byte{{1, 2, 3, 4}}, 2, 2))
	writeGzip(t, lblPath, idxLabelBytes([]byte{7}))

	ds, err := LoadIDX(imgPath, lblPath, 0)
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, []int{7}, ds.Labels)
	assert.Equal(t, []float64{1, 2, 3, 4}, ds.Images[0].Data())
}

func TestLoadIDXDirGzipFallback(t *testing.T) {
	dir := t.TempDir()
	writeGzip(t, filepath.Join(dir, trainImagesFile+".gz"), idxImageBytes([][]byte{{9}}, 1, 1))
	writeGzip(t, filepath.Join(dir, trainLabelsFile+".gz"), idxLabelBytes([]byte{2}))

	ds, err := LoadIDXDir(dir, true, 0)
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 2, ds.Labels[0])
}

func TestLoadIDXErrors(t *testing.T) {
	goodImages := idxImageBytes([][]byte{{1, 2, 3, 4}}, 2, 2)
	goodLabels := idxLabelBytes([]byte{1})

	tests := []struct {
		name    string
		images  []byte
		labels  []byte
		wantErr string
	}{
		{
			name:    "bad_image_magic",
			images:  idxLabelBytes([]byte{1}),
			labels:  goodLabels,
			wantErr: "invalid magic number",
		},
		{
			name:    "bad_label_magic",
			images:  goodImages,
			labels:  goodImages,
			wantErr: "invalid magic number",
		},
		{
			name:    "count_mismatch",
			images:  goodImages,
			labels:  idxLabelBytes([]byte{1, 2}),
			wantErr: "image count",
		},
		{
			name:    "truncated_payload",
			images:  idxImageBytes([][]byte{{1, 2}}, 2, 2),
			labels:  goodLabels,
			wantErr: "failed to read image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			imgPath := filepath.Join(dir, "images")
			lblPath := filepath.Join(dir, "labels")
			require.NoError(t, os.WriteFile(imgPath, tt.images, 0o644))
			require.NoError(t, os.WriteFile(lblPath, tt.labels, 0o644))

			_, err := LoadIDX(imgPath, lblPath, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadIDXMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadIDX(filepath.Join(dir, "absent-images"), filepath.Join(dir, "absent-labels"), 0)
	require.Error(t, err)
}
