// Package loader reads an input file into memory.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/xll-gen/bin2c/internal/errs"
)

// MaxSize is the largest effective input length; the generated size
// constant is an unsigned int.
const MaxSize = math.MaxUint32

// Options controls how the input is read.
type Options struct {
	// Text strips every CR that directly precedes an LF.
	Text bool
	// ZeroTerminate appends a single zero byte after the file contents.
	ZeroTerminate bool
}

// Load reads the whole file at path. For regular files the returned buffer
// is allocated once, sized to the file plus the optional terminator; other
// files are read until EOF.
func Load(path string, opts Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.IO, fmt.Sprintf("Failed to open %s for reading.", path), err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(errs.IO, fmt.Sprintf("Failed to read %s.", path), err)
	}
	if fi.IsDir() {
		return nil, errs.New(errs.IO, fmt.Sprintf("Failed to open %s for reading: is a directory.", path))
	}

	extra := int64(0)
	if opts.ZeroTerminate {
		extra = 1
	}

	var buf []byte
	if fi.Mode().IsRegular() && fi.Size() > 0 {
		buf, err = readSized(f, fi.Size(), extra)
	} else {
		// Pipes, character devices and procfs entries report no usable size.
		buf, err = readAll(f, extra)
	}
	if err != nil {
		return nil, classify(path, err)
	}
	size := int64(len(buf)) - extra

	if opts.Text {
		buf = StripCR(buf[:size])
		if opts.ZeroTerminate {
			buf = append(buf, 0)
		}
	}

	slog.Debug("input loaded", "input", path, "bytes", len(buf), "text", opts.Text, "zero", opts.ZeroTerminate)
	return buf, nil
}

var errTooLarge = errors.New("input too large")

// readSized reads exactly size bytes into a buffer with room for extra
// trailing zero bytes.
func readSized(r io.Reader, size, extra int64) ([]byte, error) {
	if size+extra > MaxSize {
		return nil, errTooLarge
	}
	buf := make([]byte, size+extra)
	if _, err := io.ReadFull(r, buf[:size]); err != nil {
		return nil, err
	}
	return buf, nil
}

// readAll reads r to EOF and appends extra zero bytes.
func readAll(r io.Reader, extra int64) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxSize-extra+1))
	if err != nil {
		return nil, err
	}
	if int64(len(buf))+extra > MaxSize {
		return nil, errTooLarge
	}
	return append(buf, make([]byte, extra)...), nil
}

func classify(path string, err error) error {
	if errors.Is(err, errTooLarge) {
		return errs.New(errs.Allocation, fmt.Sprintf("Input file %s is too large.", path))
	}
	return errs.Wrap(errs.IO, fmt.Sprintf("Failed to read %s.", path), err)
}

// StripCR removes every carriage return that is immediately followed by a
// line feed. The result reuses the storage of data.
func StripCR(data []byte) []byte {
	if bytes.IndexByte(data, '\r') < 0 {
		return data
	}
	out := data[:0]
	for i, c := range data {
		if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			continue
		}
		out = append(out, c)
	}
	return out
}
