package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/richcluster/engine"
)

// ExampleEngine_Run clusters four terms into their two overlapping pairs.
func ExampleEngine_Run() {
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		fmt.Println("config:", err)

		return
	}
	res, err := e.Run(context.Background(),
		[]string{"T0", "T1", "T2", "T3"},
		[]string{"g1,g2,g3", "g1,g2,g3,g4", "g5,g6,g7", "g5,g6,g7,g8"},
	)
	if err != nil {
		fmt.Println("run:", err)

		return
	}
	for _, c := range res.Clusters {
		fmt.Printf("%d: %s [%s]\n", c.Cluster, c.TermNames, c.TermIndices)
	}
	// Output:
	// 1: T0, T1 [0, 1]
	// 2: T2, T3 [2, 3]
}
