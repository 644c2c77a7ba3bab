// SPDX-License-Identifier: MIT

// Command richcluster clusters annotation terms read from a tab-separated
// table and writes the similarity matrix and cluster table as JSON.
//
// Usage:
//
//	richcluster -input terms.tsv [-config richcluster.yaml] [-output out.json] [-log-level info]
//
// Each input row holds a term name and its comma-separated gene IDs. A
// first row starting with "term" is a header. Input and output files ending
// in .gz, .zst or .lz4 are decompressed or compressed on the fly. Without
// -config the engine defaults apply; without -output the JSON goes to
// stdout. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/richcluster/engine"
	"github.com/katalvlaran/richcluster/term"
)

var errNoInput = errors.New("richcluster: -input is required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("richcluster", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	inputPath := fs.String("input", "", "tab-separated term table")
	outputPath := fs.String("output", "", "JSON output file (default stdout)")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inputPath == "" {
		return errNoInput
	}

	log, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	e, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return err
	}

	names, geneIDs, err := readTable(*inputPath)
	if err != nil {
		return err
	}
	log.Info("input loaded", zap.String("path", *inputPath), zap.Int("terms", len(names)))

	res, err := e.Run(ctx, names, geneIDs)
	if err != nil {
		return err
	}

	if *outputPath == "" {
		return res.WriteJSON(stdout)
	}
	w, err := createOutput(*outputPath)
	if err != nil {
		return err
	}
	if err := res.WriteJSON(w); err != nil {
		_ = w.Close()

		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("richcluster: close output: %w", err)
	}
	log.Info("result written", zap.String("path", *outputPath), zap.Int("clusters", len(res.Clusters)))

	return nil
}

func readTable(path string) (names, geneIDs []string, err error) {
	r, err := openInput(path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	return term.ReadTable(r)
}

// newLogger builds a development logger at debug level and a JSON
// production logger otherwise.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("richcluster: -log-level: %w", err)
	}

	var config zap.Config
	if lvl.Level() == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = lvl
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}
