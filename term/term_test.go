package term_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/richcluster/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCorpus_ShapeMismatch verifies that unequal columns fail before any parsing.
func TestNewCorpus_ShapeMismatch(t *testing.T) {
	_, err := term.NewCorpus([]string{"A", "B"}, []string{"g1"})
	assert.ErrorIs(t, err, term.ErrShapeMismatch)
}

// TestNewCorpus_InternsGenes checks the distinct-gene universe and per-term sets.
func TestNewCorpus_InternsGenes(t *testing.T) {
	c, err := term.NewCorpus(
		[]string{"A", "B", "C"},
		[]string{"g1,g2,g3", "g2, g3 ,g4", "g1,g1,,g5"},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 5, c.TotalGenes(), "g1..g5 are distinct")
	assert.Equal(t, 3, c.Term(0).Size())
	assert.Equal(t, 3, c.Term(1).Size(), "tokens are trimmed")
	assert.Equal(t, 2, c.Term(2).Size(), "duplicate and empty tokens collapse")
	assert.Equal(t, []string{"g2", "g3", "g4"}, c.GeneNames(1))
	assert.Equal(t, []string{"A", "B", "C"}, c.Names())
	assert.Equal(t, "B", c.Name(1))
	assert.Equal(t, 1, c.Term(1).Index)
}

// TestNewCorpus_Delimiter covers a custom delimiter and the empty-delimiter error.
func TestNewCorpus_Delimiter(t *testing.T) {
	c, err := term.NewCorpus([]string{"A"}, []string{"g1;g2"}, term.WithDelimiter(";"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalGenes())

	_, err = term.NewCorpus([]string{"A"}, []string{"g1"}, term.WithDelimiter(""))
	assert.ErrorIs(t, err, term.ErrEmptyDelimiter)
}

// TestNewCorpus_EmptyMembership keeps a term with no genes as an empty set.
func TestNewCorpus_EmptyMembership(t *testing.T) {
	c, err := term.NewCorpus([]string{"A", "B"}, []string{"", "g1"})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Term(0).Size())
	assert.Equal(t, 1, c.TotalGenes())
}

func TestReadTable(t *testing.T) {
	in := "term\tgenes\nGO:1\tg1,g2\nGO:2\tg2,g3\textra\n"
	names, genes, err := term.ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:1", "GO:2"}, names)
	assert.Equal(t, []string{"g1,g2", "g2,g3"}, genes)
}

func TestReadTable_NoHeader(t *testing.T) {
	names, _, err := term.ReadTable(strings.NewReader("GO:1\tg1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:1"}, names)
}

func TestReadTable_MalformedRow(t *testing.T) {
	_, _, err := term.ReadTable(strings.NewReader("GO:1\tg1\nGO:2\n"))
	assert.ErrorIs(t, err, term.ErrMalformedRow)
}
