// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/goccy/go-json"
)

// jsonSimilarity is the wire form: labels plus dense rows. The diagonal
// carries SameTerm unchanged so consumers can recognize it.
type jsonSimilarity struct {
	Labels []string    `json:"labels"`
	Rows   [][]float64 `json:"rows"`
}

// MarshalJSON implements json.Marshaler.
func (m *Similarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSimilarity{Labels: m.labels, Rows: m.Rows()})
}

// UnmarshalJSON implements json.Unmarshaler. Ragged or mislabeled input
// is rejected with ErrLabelMismatch.
func (m *Similarity) UnmarshalJSON(b []byte) error {
	var w jsonSimilarity
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out, err := New(len(w.Rows), w.Labels)
	if err != nil {
		return err
	}
	for i, row := range w.Rows {
		if len(row) != out.n {
			return ErrLabelMismatch
		}
		copy(out.data[i*out.n:], row)
	}
	*m = *out

	return nil
}
