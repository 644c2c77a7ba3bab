package similarity_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/richcluster/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestKappaScore_Example reproduces A={g1,g2,g3}, B={g2,g3,g4}, N=4 → -1/3.
func TestKappaScore_Example(t *testing.T) {
	a := roaring.BitmapOf(1, 2, 3)
	b := roaring.BitmapOf(2, 3, 4)

	got := similarity.KappaScore(a, b, 4)
	assert.InDelta(t, -1.0/3.0, got, eps)
	assert.InDelta(t, got, similarity.KappaScore(b, a, 4), eps, "kappa is symmetric")
}

// TestKappaScore_Degenerate covers expected agreement == 1 and an empty universe.
func TestKappaScore_Degenerate(t *testing.T) {
	// Both sets cover the whole universe: e = (N² + 0) / N² = 1.
	full := roaring.BitmapOf(0, 1, 2)
	assert.Equal(t, 1.0, similarity.KappaScore(full, full, 3))

	// Both sets empty: e = (0 + N²) / N² = 1.
	empty := roaring.New()
	assert.Equal(t, 1.0, similarity.KappaScore(empty, empty, 5))

	assert.Equal(t, 0.0, similarity.KappaScore(empty, empty, 0))
}

// TestKappaScore_Identical gives perfect agreement for identical partial sets.
func TestKappaScore_Identical(t *testing.T) {
	a := roaring.BitmapOf(1, 2)
	assert.InDelta(t, 1.0, similarity.KappaScore(a, a.Clone(), 4), eps)
}

func TestJaccardScore(t *testing.T) {
	a := roaring.BitmapOf(1, 2, 3)
	b := roaring.BitmapOf(2, 3, 4)
	assert.InDelta(t, 0.5, similarity.JaccardScore(a, b, 0), eps)
	assert.Equal(t, 0.0, similarity.JaccardScore(roaring.New(), roaring.New(), 10), "0/0 is 0")
	assert.Equal(t, 0.0, similarity.JaccardScore(roaring.BitmapOf(1), roaring.BitmapOf(2), 2))
}

func TestParseMetric(t *testing.T) {
	m, err := similarity.ParseMetric(" Kappa ")
	require.NoError(t, err)
	assert.Equal(t, similarity.Kappa, m)

	m, err = similarity.ParseMetric("jaccard")
	require.NoError(t, err)
	assert.Equal(t, similarity.Jaccard, m)

	_, err = similarity.ParseMetric("cosine")
	assert.ErrorIs(t, err, similarity.ErrUnknownMetric)

	_, err = similarity.Metric(42).Func()
	assert.ErrorIs(t, err, similarity.ErrUnknownMetric)
}

func TestMetric_TextRoundTrip(t *testing.T) {
	var m similarity.Metric
	require.NoError(t, m.UnmarshalText([]byte("jaccard")))
	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "jaccard", string(b))
	assert.Error(t, m.UnmarshalText([]byte("dice")))
}
