package graph_test

import (
	"testing"

	"github.com/katalvlaran/richcluster/graph"
	"github.com/katalvlaran/richcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareMatrix builds a symmetric matrix from an upper triangle map.
func squareMatrix(t *testing.T, n int, scores map[[2]int]float64) *matrix.Similarity {
	t.Helper()
	m, err := matrix.New(n, nil)
	require.NoError(t, err)
	for i := range n {
		m.Set(matrix.SameTerm, i, i)
	}
	for k, v := range scores {
		m.SetPair(v, k[0], k[1])
	}

	return m
}

func TestBuild_ThresholdAndSymmetry(t *testing.T) {
	m := squareMatrix(t, 4, map[[2]int]float64{
		{0, 1}: 0.9,
		{0, 2}: 0.5,
		{1, 2}: 0.49,
		{2, 3}: 0.7,
	})
	g := graph.Build(m, 0.5)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasNeighbor(0, 2), "score == cutoff passes by default")
	assert.False(t, g.HasNeighbor(1, 2))
	for i := range 4 {
		assert.False(t, g.HasNeighbor(i, i), "no self-loops")
		for j := range 4 {
			assert.Equal(t, g.HasNeighbor(i, j), g.HasNeighbor(j, i), "symmetry (%d,%d)", i, j)
		}
	}
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 3}, g.Neighbors(2))
	assert.Equal(t, 2, g.Degree(2))
}

func TestBuild_Strict(t *testing.T) {
	m := squareMatrix(t, 3, map[[2]int]float64{{0, 1}: 0.5, {1, 2}: 0.6})
	g := graph.Build(m, 0.5, graph.WithStrict())
	assert.False(t, g.HasNeighbor(0, 1), "score == cutoff fails when strict")
	assert.True(t, g.HasNeighbor(1, 2))
	assert.True(t, g.Passes(0.51))
	assert.False(t, g.Passes(0.5))
	assert.Equal(t, 0.5, g.Cutoff())
}

// TestBuild_IsolatedNodesHaveRows checks every index owns an (empty) row.
func TestBuild_IsolatedNodesHaveRows(t *testing.T) {
	m := squareMatrix(t, 3, nil)
	g := graph.Build(m, 0.1)
	for i := range 3 {
		assert.NotNil(t, g.Neighbors(i))
		assert.Empty(t, g.Neighbors(i))
		assert.Equal(t, 0, g.Degree(i))
	}
}

// TestBuild_SentinelIgnored verifies the diagonal never creates an edge even with a very low cutoff.
func TestBuild_SentinelIgnored(t *testing.T) {
	m := squareMatrix(t, 2, nil)
	g := graph.Build(m, -1000)
	assert.False(t, g.HasNeighbor(0, 0))
	assert.True(t, g.HasNeighbor(0, 1))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 2)
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasNeighbor(2, 2))
	assert.False(t, g.HasNeighbor(0, -1))
	assert.Panics(t, func() { g.Neighbors(3) })
}
