package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".gz", ".zst", ".lz4"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			w, err := createOutput(path)
			require.NoError(t, err)
			_, err = io.WriteString(w, table)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := openInput(path)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, table, string(got))
		})
	}
}

func TestCodec_CompressesOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zst")
	w, err := createOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, table)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, table, string(raw))
}

func TestRun_CompressedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.tsv.gz")
	w, err := createOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, table)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, genes, err := readTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"T0", "T1", "T2", "T3"}, names)
	assert.Len(t, genes, 4)
}
