package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// openInput opens filename for reading, transparently decompressing
// gzip and zstd inputs based on the file extension.
func openInput(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(filename) {
	case ".gz":
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileReader{g, f}, nil
	case ".zst":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileReader{z.IOReadCloser(), f}, nil
	}
	return f, nil
}

// fileReader couples a decompressor with the file underneath it so
// both are released by one Close
type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if e := r.f.Close(); err == nil {
		err = e
	}
	return err
}

// denseRows converts a matrix to its rows as nested slices
func denseRows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return rows
}

func errExit(err error, msg string) {
	fmt.Fprintf(os.Stderr, "molden2abins: %v %s\n", err, msg)
	os.Exit(1)
}
