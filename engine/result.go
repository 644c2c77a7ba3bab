// SPDX-License-Identifier: MIT

package engine

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/richcluster/cluster"
	"github.com/katalvlaran/richcluster/matrix"
	"github.com/katalvlaran/richcluster/merge"
	"github.com/katalvlaran/richcluster/term"
)

// ListDelimiter joins member names and indices in ClusterRow.
const ListDelimiter = ", "

// ClusterRow is one exported cluster.
type ClusterRow struct {
	// Cluster is the 1-based position in the output.
	Cluster int `json:"cluster"`
	// TermNames holds the member names joined by ListDelimiter.
	TermNames string `json:"term_names"`
	// TermIndices holds the 0-based member indices joined by ListDelimiter.
	TermIndices string `json:"term_indices"`

	Members []int    `json:"members"`
	Names   []string `json:"names"`
}

// Stats describes one run.
type Stats struct {
	Terms      int           `json:"terms"`
	Genes      int           `json:"genes"`
	Edges      int           `json:"edges"`
	Seeds      int           `json:"seeds"`
	Merge      merge.Stats   `json:"merge"`
	Duplicates int           `json:"duplicates"`
	Dropped    int           `json:"dropped"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Result is the output of a successful Run.
type Result struct {
	RunID    string             `json:"run_id"`
	Mode     Mode               `json:"mode"`
	Matrix   *matrix.Similarity `json:"similarity_matrix"`
	Clusters []ClusterRow       `json:"clusters"`
	Stats    Stats              `json:"stats"`
}

// WriteJSON writes r as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// exportRows numbers the clusters of p that have at least minSize members.
func exportRows(corpus *term.Corpus, p *cluster.Partition, minSize int) []ClusterRow {
	rows := make([]ClusterRow, 0, p.Len())
	for _, c := range p.Clusters() {
		if c.Len() < minSize {
			continue
		}
		members := c.Members()
		names := make([]string, len(members))
		indices := make([]string, len(members))
		for k, i := range members {
			names[k] = corpus.Name(i)
			indices[k] = strconv.Itoa(i)
		}
		rows = append(rows, ClusterRow{
			Cluster:     len(rows) + 1,
			TermNames:   strings.Join(names, ListDelimiter),
			TermIndices: strings.Join(indices, ListDelimiter),
			Members:     members,
			Names:       names,
		})
	}

	return rows
}
