// Package ui renders generated hoards for people and tools.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Output is the destination a rendered hoard is written to: either the
// process's standard output or a file.
type Output struct {
	w    io.Writer
	file *os.File
}

// NewOutput opens path for writing, truncating it. An empty path writes to
// stdout instead.
func NewOutput(path string, stdout io.Writer) (*Output, error) {
	if path == "" {
		return &Output{w: stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &Output{w: f, file: f}, nil
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// IsFile reports whether output goes to a file.
func (o *Output) IsFile() bool {
	return o.file != nil
}

// Path returns the file path, or "" for stdout.
func (o *Output) Path() string {
	if o.file == nil {
		return ""
	}
	return o.file.Name()
}

// Close closes the underlying file. Closing a stdout output is a no-op.
func (o *Output) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}
