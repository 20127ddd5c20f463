package data

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// colorRecord builds one 3073-byte record with constant R, G, and B
// planes.
func colorRecord(label, r, g, b byte) []byte {
	record := make([]byte, colorRecordSize)
	record[0] = label
	for i := 0; i < colorPlane; i++ {
		record[1+i] = r
		record[1+colorPlane+i] = g
		record[1+2*colorPlane+i] = b
	}
	return record
}

func writeColorFixture(t *testing.T, path string, records ...[]byte) {
	t.Helper()

	var payload []byte
	for _, rec := range records {
		payload = append(payload, rec...)
	}
	require.NoError(t, os.WriteFile(path, payload, 0o644))
}

func TestLoadColorBatchLuminance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_batch.bin")
	writeColorFixture(t, path,
		colorRecord(7, 255, 0, 0), // pure red
		colorRecord(9, 100, 100, 100), // gray
	)

	ds, err := LoadColorBatch(path, 0)
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []int{7, 9}, ds.Labels)
	assert.Equal(t, 10, ds.ClassCount)
	require.True(t, ds.Images[0].Shape().Equal(tensor.Shape{ColorSide, ColorSide}))

	assert.InDelta(t, 0.299*255, ds.Images[0].At(0, 0), 1e-9, "pure red collapses to its luminance weight")
	assert.InDelta(t, 100.0, ds.Images[1].At(16, 16), 1e-9, "gray keeps its intensity")
}

func TestLoadColorBatchMaxSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.bin")
	writeColorFixture(t, path,
		colorRecord(0, 1, 1, 1),
		colorRecord(1, 2, 2, 2),
		colorRecord(2, 3, 3, 3),
	)

	ds, err := LoadColorBatch(path, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, ds.Labels)
}

func TestLoadColorBatchGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.bin.gz")
	writeGzip(t, path, colorRecord(4, 10, 10, 10))

	ds, err := LoadColorBatch(path, 0)
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 4, ds.Labels[0])
}

func TestLoadColorBatchErrors(t *testing.T) {
	t.Run("truncated_record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.bin")
		writeColorFixture(t, path, colorRecord(0, 1, 1, 1)[:colorRecordSize-1])

		_, err := LoadColorBatch(path, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a multiple")
	})

	t.Run("empty_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batch.bin")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := LoadColorBatch(path, 0)
		require.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadColorBatch(filepath.Join(t.TempDir(), "absent.bin"), 0)
		require.Error(t, err)
	})
}

func TestLoadColorDir(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		writeColorFixture(t, filepath.Join(dir, fmt.Sprintf("data_batch_%d.bin", i)),
			colorRecord(byte(i), 50, 50, 50))
	}
	writeColorFixture(t, filepath.Join(dir, "test_batch.bin"), colorRecord(9, 50, 50, 50))

	train, err := LoadColorDir(dir, true, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, train.Labels)

	test, err := LoadColorDir(dir, false, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, test.Labels)
}

func TestLoadColorDirMaxSamplesAcrossBatches(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		writeColorFixture(t, filepath.Join(dir, fmt.Sprintf("data_batch_%d.bin", i)),
			colorRecord(byte(i), 50, 50, 50),
			colorRecord(byte(i), 60, 60, 60))
	}

	ds, err := LoadColorDir(dir, true, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2}, ds.Labels)
}

func TestLoadColorDirMissingBatch(t *testing.T) {
	dir := t.TempDir()
	writeColorFixture(t, filepath.Join(dir, "data_batch_1.bin"), colorRecord(0, 1, 1, 1))

	_, err := LoadColorDir(dir, true, 0)
	require.Error(t, err, "all five training batches must be present")
	assert.Contains(t, err.Error(), "data_batch_2.bin")
}
