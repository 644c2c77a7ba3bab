// SPDX-License-Identifier: MIT

package term

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedRow is returned by ReadTable for rows without two columns.
var ErrMalformedRow = errors.New("term: table row must have a term and a gene-ID column")

// headerTerm is the first-column label that marks a header row.
const headerTerm = "term"

// ReadTable reads tab-separated (term, geneIDs) rows. Extra columns are
// ignored. A first row whose first cell is "term" (case-insensitive) is
// treated as a header and skipped.
func ReadTable(r io.Reader) (names, geneIDs []string, err error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("term: read table: %w", err)
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), headerTerm) {
			continue
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("line %d: %w", line, ErrMalformedRow)
		}
		names = append(names, strings.TrimSpace(rec[0]))
		geneIDs = append(geneIDs, rec[1])
	}

	return names, geneIDs, nil
}
