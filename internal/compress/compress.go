// Package compress provides the optional codecs applied to the input before
// it is packed.
package compress

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/xll-gen/bin2c/internal/errs"
)

// None is the codec name that disables compression.
const None = "none"

// Compressor turns a byte buffer into its compressed form.
type Compressor interface {
	Name() string
	Compress(data []byte) ([]byte, error)
}

// CompressorFunc adapts a plain function to the Compressor interface.
type CompressorFunc struct {
	ID string
	Fn func([]byte) ([]byte, error)
}

func (c CompressorFunc) Name() string                         { return c.ID }
func (c CompressorFunc) Compress(data []byte) ([]byte, error) { return c.Fn(data) }

var registry = map[string]Compressor{
	"bzip2": CompressorFunc{"bzip2", compressBzip2},
	"gzip":  CompressorFunc{"gzip", compressGzip},
	"s2":    CompressorFunc{"s2", compressS2},
	"zlib":  CompressorFunc{"zlib", compressZlib},
	"zstd":  CompressorFunc{"zstd", compressZstd},
}

// Names returns the selectable codec names, including None.
func Names() []string {
	names := []string{None}
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names[1:])
	return names
}

// Lookup returns the codec registered under name. The empty name and None
// return a nil Compressor and no error.
func Lookup(name string) (Compressor, error) {
	name = strings.ToLower(name)
	if name == "" || name == None {
		return nil, nil
	}
	c, ok := registry[name]
	if !ok {
		return nil, errs.New(errs.InvalidConfiguration,
			fmt.Sprintf("Unknown compression '%s' (allowed: %s).", name, strings.Join(Names(), ", ")))
	}
	return c, nil
}

// Apply runs c over data and classifies any failure as a compression error.
func Apply(c Compressor, data []byte) ([]byte, error) {
	out, err := c.Compress(data)
	if err != nil {
		return nil, errs.Wrap(errs.Compression, fmt.Sprintf("Failed to compress data: error %v.", err), err)
	}
	return out, nil
}

func compressBzip2(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return nil, err
	}
	return finish(&buf, w, data)
}

func compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	return finish(&buf, w, data)
}

func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	return finish(&buf, w, data)
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

func compressS2(data []byte) ([]byte, error) {
	return s2.EncodeBest(nil, data), nil
}

func finish(buf *bytes.Buffer, w io.WriteCloser, data []byte) ([]byte, error) {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
