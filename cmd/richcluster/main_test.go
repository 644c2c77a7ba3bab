package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/richcluster/engine"
)

const table = "term\tgenes\n" +
	"T0\tg1,g2,g3\n" +
	"T1\tg1,g2,g3,g4\n" +
	"T2\tg5,g6,g7\n" +
	"T3\tg5,g6,g7,g8\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func decode(t *testing.T, b []byte) []engine.ClusterRow {
	t.Helper()
	var out struct {
		Clusters []engine.ClusterRow `json:"clusters"`
	}
	require.NoError(t, json.Unmarshal(b, &out))

	return out.Clusters
}

func TestRun_Stdout(t *testing.T) {
	in := writeFile(t, "terms.tsv", table)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-input", in, "-log-level", "error"}, &buf))

	rows := decode(t, buf.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, "T0, T1", rows[0].TermNames)
	assert.Equal(t, "2, 3", rows[1].TermIndices)
}

func TestRun_ConfigAndOutput(t *testing.T) {
	in := writeFile(t, "terms.tsv", table)
	cfg := writeFile(t, "cfg.yaml", "mode: david\ninitial_group_membership: 2\nfinal_group_membership: 2\n")
	out := filepath.Join(t.TempDir(), "out.json")

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(),
		[]string{"-input", in, "-config", cfg, "-output", out, "-log-level", "warn"}, &buf))
	assert.Zero(t, buf.Len())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, decode(t, b), 2)
}

func TestRun_Errors(t *testing.T) {
	in := writeFile(t, "terms.tsv", table)

	assert.ErrorIs(t, run(context.Background(), nil, &bytes.Buffer{}), errNoInput)
	assert.Error(t, run(context.Background(), []string{"-input", in, "-log-level", "loud"}, &bytes.Buffer{}))
	assert.ErrorIs(t, run(context.Background(),
		[]string{"-input", filepath.Join(t.TempDir(), "none.tsv"), "-log-level", "error"}, &bytes.Buffer{}),
		os.ErrNotExist)

	bad := writeFile(t, "cfg.yaml", "mode: kmeans\n")
	assert.ErrorIs(t, run(context.Background(),
		[]string{"-input", in, "-config", bad, "-log-level", "error"}, &bytes.Buffer{}),
		engine.ErrUnknownMode)
}
