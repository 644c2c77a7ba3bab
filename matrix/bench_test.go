package matrix_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/richcluster/matrix"
	"github.com/katalvlaran/richcluster/similarity"
)

// benchCorpus generates n terms whose gene windows overlap with their neighbors.
func benchCorpus(b *testing.B, n int) ([]string, []string) {
	b.Helper()
	names := make([]string, n)
	genes := make([]string, n)
	for i := range n {
		names[i] = fmt.Sprintf("T%d", i)
		ids := make([]string, 0, 20)
		for g := i; g < i+20; g++ {
			ids = append(ids, fmt.Sprintf("g%d", g))
		}
		genes[i] = strings.Join(ids, ",")
	}

	return names, genes
}

func benchmarkBuild(b *testing.B, n, workers int) {
	names, genes := benchCorpus(b, n)
	c := mustCorpus(b, names, genes)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Build(context.Background(), c, similarity.KappaScore, matrix.WithWorkers(workers)); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Sequential500 scores 500 terms on one worker.
func BenchmarkBuild_Sequential500(b *testing.B) { benchmarkBuild(b, 500, 1) }

// BenchmarkBuild_Parallel500 scores 500 terms on GOMAXPROCS workers.
func BenchmarkBuild_Parallel500(b *testing.B) { benchmarkBuild(b, 500, 0) }
