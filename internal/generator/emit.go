package generator

import (
	"bufio"
	"io"

	"github.com/xll-gen/bin2c/internal/packer"
)

// Name identifies the tool in the preamble of generated files.
const Name = "Bin2C"

// Declaration describes one generated array.
type Declaration struct {
	// Symbol is the already sanitized identifier of the array.
	Symbol string
	// Width is the element width.
	Width packer.WordWidth
	// Mutable drops the const qualifier.
	Mutable bool
	// Macro emits the sizes as #define instead of const unsigned int.
	Macro bool
	// Preamble writes the generator comment and the stdint include first.
	Preamble bool
	// Uncompressed is the input length before compression. A negative value
	// means the data was not compressed and no uncompressed size is emitted.
	Uncompressed int
}

type declData struct {
	Declaration
	Generator  string
	CType      string
	Count      int
	Compressed bool
}

// Emit writes the declaration of data to w and returns the element count.
func Emit(w io.Writer, decl Declaration, data []byte) (int, error) {
	tmpl, err := declarationTemplates()
	if err != nil {
		return 0, err
	}

	d := declData{
		Declaration: decl,
		Generator:   Name,
		CType:       decl.Width.CType(),
		Count:       packer.ElementCount(len(data), decl.Width),
		Compressed:  decl.Uncompressed >= 0,
	}

	bw := bufio.NewWriter(w)
	if err := tmpl.ExecuteTemplate(bw, "head", d); err != nil {
		return 0, err
	}
	if _, err := packer.Format(bw, data, decl.Width); err != nil {
		return 0, err
	}
	if err := tmpl.ExecuteTemplate(bw, "tail", d); err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return d.Count, nil
}
