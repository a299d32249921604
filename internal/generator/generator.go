package generator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xll-gen/bin2c/internal/compress"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/loader"
	"github.com/xll-gen/bin2c/internal/symbol"
)

// Result summarizes a completed run.
type Result struct {
	Input  string
	Output string
	Symbol string
	Bits   int
	Codec  string
	// InputBytes is the length of the loaded input, terminator included.
	InputBytes int
	// PackedBytes is the length of the data that was packed, after compression.
	PackedBytes int
	// Elements is the declared array length.
	Elements int
}

// Generate converts the file at input into an array declaration written to
// output. An empty output selects the default header name.
//
// Every check that can fail without touching the output runs first: the
// configuration is validated, the symbol resolved, the input read and
// compressed. Only then is the output opened. A write error after that point
// may leave a partial file behind.
func Generate(cfg *config.Config, input, output string) (*Result, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if output == "" {
		output = symbol.OutputName(input)
	}

	name, err := symbol.Resolve(cfg.Label, input)
	if err != nil {
		return nil, err
	}

	codec, err := compress.Lookup(cfg.Compress)
	if err != nil {
		return nil, err
	}

	data, err := loader.Load(input, loader.Options{Text: cfg.Text, ZeroTerminate: cfg.Zero})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Input:       input,
		Output:      output,
		Symbol:      name,
		Bits:        cfg.Bits,
		Codec:       compress.None,
		InputBytes:  len(data),
		PackedBytes: len(data),
	}

	decl := Declaration{
		Symbol:       name,
		Width:        cfg.Width(),
		Mutable:      cfg.Mutable,
		Macro:        cfg.Define,
		Preamble:     !cfg.Append,
		Uncompressed: -1,
	}

	if codec != nil {
		packed, err := compress.Apply(codec, data)
		if err != nil {
			return nil, err
		}
		slog.Debug("input compressed", "codec", codec.Name(), "bytes", len(data), "compressed", len(packed))
		decl.Uncompressed = len(data)
		res.Codec = codec.Name()
		res.PackedBytes = len(packed)
		data = packed
	}

	n, err := writeOutput(output, cfg.Append, decl, data)
	if err != nil {
		return nil, err
	}
	res.Elements = n

	slog.Debug("declaration written", "output", output, "symbol", name, "bits", cfg.Bits, "words", n)
	return res, nil
}

func writeOutput(path string, appendMode bool, decl Declaration, data []byte) (int, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return 0, errs.Wrap(errs.IO, fmt.Sprintf("Failed to open %s for writing", path), err)
	}

	n, err := Emit(f, decl, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, errs.Wrap(errs.IO, fmt.Sprintf("Failed to write %s: %v", path, err), err)
	}
	return n, nil
}
