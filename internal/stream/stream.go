// Package stream opens color table files for the command line tool. Paths ending in
// .zst are transparently zstd (de)compressed so compressed palettes reach the decoder
// as an ordinary chunked byte stream.
package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks zstd compressed files.
const CompressedSuffix = ".zst"

// Open opens path for reading, decompressing when it ends in CompressedSuffix.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return file, nil
	}

	decoder, err := zstd.NewReader(file,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("reading zstd frame from %s: %w", path, err)
	}
	return &readCloser{Reader: decoder, close: func() error {
		decoder.Close()
		return file.Close()
	}}, nil
}

// Create creates path for writing, compressing when it ends in CompressedSuffix.
// Close flushes the compressed frame.
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return file, nil
	}

	encoder, err := zstd.NewWriter(file,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("starting zstd frame in %s: %w", path, err)
	}
	return &writeCloser{Writer: encoder, close: func() error {
		if err := encoder.Close(); err != nil {
			file.Close()
			return fmt.Errorf("finishing zstd frame in %s: %w", path, err)
		}
		return file.Close()
	}}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error {
	return w.close()
}
