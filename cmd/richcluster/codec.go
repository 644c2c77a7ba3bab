// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressed files are recognized by extension: .gz, .zst and .lz4.

// openInput opens path, decompressing by extension.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("richcluster: open input: %w", err)
	}

	var r io.Reader
	var closeCodec func()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("richcluster: gzip input: %w", err)
		}
		r, closeCodec = zr, func() { _ = zr.Close() }
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("richcluster: zstd input: %w", err)
		}
		r, closeCodec = zr, zr.Close
	case ".lz4":
		r = lz4.NewReader(f)
	default:
		return f, nil
	}

	return &readCloser{Reader: r, close: func() error {
		if closeCodec != nil {
			closeCodec()
		}

		return f.Close()
	}}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

// createOutput creates path, compressing by extension. Close flushes the
// codec before closing the file.
func createOutput(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("richcluster: create output: %w", err)
	}

	var codec io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		codec = gzip.NewWriter(f)
	case ".zst":
		if codec, err = zstd.NewWriter(f); err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("richcluster: zstd output: %w", err)
		}
	case ".lz4":
		codec = lz4.NewWriter(f)
	default:
		return f, nil
	}

	return &writeCloser{codec: codec, file: f}, nil
}

type writeCloser struct {
	codec io.WriteCloser
	file  *os.File
}

func (w *writeCloser) Write(p []byte) (int, error) { return w.codec.Write(p) }

func (w *writeCloser) Close() error {
	if err := w.codec.Close(); err != nil {
		_ = w.file.Close()

		return err
	}

	return w.file.Close()
}
