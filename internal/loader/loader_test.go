package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xll-gen/bin2c/internal/errs"
)

func writeInput(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := []byte("line1\r\nline2\rx\r\n")
	tests := []struct {
		name string
		opts Options
		want []byte
	}{
		{"binary", Options{}, content},
		{"binary zero", Options{ZeroTerminate: true}, append(bytes.Clone(content), 0)},
		{"text", Options{Text: true}, []byte("line1\nline2\rx\n")},
		{"text zero", Options{Text: true, ZeroTerminate: true}, []byte("line1\nline2\rx\n\x00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeInput(t, content), tt.opts)
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeInput(t, nil)

	got, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}

	got, err = Load(path, Options{ZeroTerminate: true})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]byte{0}, got); diff != "" {
		t.Errorf("Load(zero) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.bin"), Options{})
	if !errors.Is(err, errs.IO) {
		t.Errorf("Load(missing) error = %v, want IO", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) lost the cause: %v", err)
	}

	if _, err := Load(dir, Options{}); !errors.Is(err, errs.IO) {
		t.Errorf("Load(dir) error = %v, want IO", err)
	}
}

func TestStripCR(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"no breaks", "no breaks"},
		{"a\r\nb", "a\nb"},
		{"\r\r\n", "\r\n"},
		{"trailing\r", "trailing\r"},
		{"lf\n\r", "lf\n\r"},
	}
	for _, tt := range tests {
		if got := string(StripCR([]byte(tt.in))); got != tt.want {
			t.Errorf("StripCR(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
