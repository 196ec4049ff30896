package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const (
	lz4Suffix = ".lz4"
	stdinPath = "-"
)

// ErrUnsupportedFormat is returned for an unknown --format value.
var ErrUnsupportedFormat = errors.New("unsupported format")

// sourceEncoder writes a stream of mapped files in one output format. JSON
// formats write one document per line or block, YAML separates documents
// with "---".
type sourceEncoder struct {
	format string
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func newSourceEncoder(w io.Writer, format string) (*sourceEncoder, error) {
	enc := &sourceEncoder{format: format}

	switch format {
	case formatJSON:
		enc.json = json.NewEncoder(w)
		enc.json.SetIndent("", "  ")
		enc.json.SetEscapeHTML(false)
	case formatCompact:
		enc.json = json.NewEncoder(w)
		enc.json.SetEscapeHTML(false)
	case formatYAML:
		enc.yaml = yaml.NewEncoder(w)
		enc.yaml.SetIndent(2)
	default:
		if err := checkFormat(format); err != nil {
			return nil, err
		}
	}

	return enc, nil
}

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatCompact, formatYAML, formatNone:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (e *sourceEncoder) Encode(file *node.SourceFile) error {
	var err error

	switch {
	case e.json != nil:
		err = e.json.Encode(file)
	case e.yaml != nil:
		err = e.yaml.Encode(file.ToMap())
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", e.format, err)
	}

	return nil
}

func (e *sourceEncoder) Close() error {
	if e.yaml == nil {
		return nil
	}

	if err := e.yaml.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}

	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// lz4File closes the compressor before the file it writes to.
type lz4File struct {
	*lz4.Writer

	file *os.File
}

func (f *lz4File) Close() error {
	return errors.Join(f.Writer.Close(), f.file.Close())
}

// openOutput opens path for writing, or returns stdout when path is empty.
// Paths ending in .lz4 are compressed as an LZ4 frame.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	if strings.HasSuffix(path, lz4Suffix) {
		return &lz4File{Writer: lz4.NewWriter(f), file: f}, nil
	}

	return f, nil
}

type lz4Reader struct {
	*lz4.Reader

	file *os.File
}

func (r *lz4Reader) Close() error { return r.file.Close() }

// openInput opens path for reading, or stdin for "-". Paths ending in .lz4
// are decompressed.
func openInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == stdinPath {
		return io.NopCloser(stdin), "stdin", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}

	if strings.HasSuffix(path, lz4Suffix) {
		return &lz4Reader{Reader: lz4.NewReader(f), file: f}, path, nil
	}

	return f, path, nil
}
