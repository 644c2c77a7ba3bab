// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrUnknownMetric is returned by ParseMetric and Metric.Func for unsupported names.
var ErrUnknownMetric = errors.New("similarity: unknown similarity metric")

// Func scores two gene sets given the size of the gene universe.
type Func func(a, b *roaring.Bitmap, total int) float64

// Metric selects a similarity function.
type Metric int

const (
	// Kappa is Cohen's kappa statistic (the DAVID default).
	Kappa Metric = iota
	// Jaccard is the intersection-over-union index.
	Jaccard
)

// String returns the canonical lower-case name.
func (m Metric) String() string {
	switch m {
	case Kappa:
		return "kappa"
	case Jaccard:
		return "jaccard"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric resolves a metric name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kappa":
		return Kappa, nil
	case "jaccard":
		return Jaccard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Func returns the bound scoring function for m.
func (m Metric) Func() (Func, error) {
	switch m {
	case Kappa:
		return KappaScore, nil
	case Jaccard:
		return JaccardScore, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, m)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(b []byte) error {
	v, err := ParseMetric(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// KappaScore returns Cohen's kappa for gene sets a and b over a universe of
// total genes. Returns 1 when expected agreement is exactly 1 and 0 when the
// universe is empty.
func KappaScore(a, b *roaring.Bitmap, total int) float64 {
	if total <= 0 {
		return 0
	}
	c := float64(a.AndCardinality(b))
	na := float64(a.GetCardinality())
	nb := float64(b.GetCardinality())
	n := float64(total)

	aOnly := na - c
	bOnly := nb - c
	neither := n - c - aOnly - bOnly

	observed := (c + neither) / n
	expected := (na*nb + (n-na)*(n-nb)) / (n * n)
	if expected == 1 {
		return 1.0
	}

	return (observed - expected) / (1 - expected)
}

// JaccardScore returns |a∩b| / |a∪b|, or 0 when both sets are empty.
// total is ignored.
func JaccardScore(a, b *roaring.Bitmap, _ int) float64 {
	union := a.OrCardinality(b)
	if union == 0 {
		return 0
	}

	return float64(a.AndCardinality(b)) / float64(union)
}
