package compress

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/xll-gen/bin2c/internal/errs"
)

func decompress(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var (
		r   io.Reader
		err error
	)
	switch name {
	case "bzip2":
		r, err = bzip2.NewReader(bytes.NewReader(data), nil)
	case "gzip":
		r, err = gzip.NewReader(bytes.NewReader(data))
	case "zlib":
		r, err = zlib.NewReader(bytes.NewReader(data))
	case "zstd":
		dec, derr := zstd.NewReader(nil)
		if derr != nil {
			t.Fatal(derr)
		}
		defer dec.Close()
		out, derr := dec.DecodeAll(data, nil)
		if derr != nil {
			t.Fatalf("zstd decode: %v", derr)
		}
		return out
	case "s2":
		out, derr := s2.Decode(nil, data)
		if derr != nil {
			t.Fatalf("s2 decode: %v", derr)
		}
		return out
	default:
		t.Fatalf("no decoder for %s", name)
	}
	if err != nil {
		t.Fatalf("%s reader: %v", name, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("%s decode: %v", name, err)
	}
	return out
}

func TestCodecsRoundTrip(t *testing.T) {
	input := []byte(strings.Repeat("embedded resource payload ", 200))
	for _, name := range Names()[1:] {
		t.Run(name, func(t *testing.T) {
			c, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", name, err)
			}
			if c.Name() != name {
				t.Errorf("Name() = %q, want %q", c.Name(), name)
			}
			out, err := Apply(c, input)
			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			if len(out) >= len(input) {
				t.Errorf("compressed size %d not smaller than input %d", len(out), len(input))
			}
			if diff := cmp.Diff(input, decompress(t, name, out)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"", "none", "NONE"} {
		c, err := Lookup(name)
		if err != nil || c != nil {
			t.Errorf("Lookup(%q) = (%v, %v), want (nil, nil)", name, c, err)
		}
	}
	if c, err := Lookup("ZSTD"); err != nil || c == nil {
		t.Errorf("Lookup(ZSTD) = (%v, %v), want codec", c, err)
	}

	_, err := Lookup("lzma")
	if !errors.Is(err, errs.InvalidConfiguration) {
		t.Fatalf("Lookup(lzma) error = %v, want InvalidConfiguration", err)
	}
	if !strings.Contains(err.Error(), "bzip2") {
		t.Errorf("error should list the allowed codecs: %v", err)
	}
}

func TestApplyFailure(t *testing.T) {
	broken := CompressorFunc{"broken", func([]byte) ([]byte, error) { return nil, errors.New("status -3") }}
	_, err := Apply(broken, []byte("x"))
	if !errors.Is(err, errs.Compression) {
		t.Fatalf("Apply() error = %v, want Compression", err)
	}
	if !strings.Contains(err.Error(), "status -3") {
		t.Errorf("error should name the underlying status: %v", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"none", "bzip2", "gzip", "s2", "zlib", "zstd"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
