package packer

import (
	"io"
)

const hexDigits = "0123456789abcdef"

// Formatter renders packed words as comma separated hex literals. It is an
// io.Writer: bytes written to it are packed as they arrive, so the caller may
// stream the input in any chunk size. Close must be called to emit a pending
// partial word.
//
// Layout: the first word starts on a new line, every following word is
// preceded by ", ", and a line break with one tab of indent is inserted before
// a word whenever the number of bytes consumed so far is a multiple of
// BytesPerRow.
type Formatter struct {
	w     io.Writer
	width WordWidth
	acc   accumulator

	consumed int
	words    int

	needComma   bool
	needNewline bool

	scratch []byte
	err     error
}

// NewFormatter returns a Formatter that writes words of the given width to w.
func NewFormatter(w io.Writer, width WordWidth) *Formatter {
	return &Formatter{
		w:           w,
		width:       width,
		acc:         accumulator{width: width},
		needNewline: true,
		scratch:     make([]byte, 0, 16),
	}
}

// Write packs p into words and renders every completed word. On a write
// error the returned count includes the byte that completed the failed word.
func (f *Formatter) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, b := range p {
		f.consumed++
		if word, ok := f.acc.add(b); ok {
			f.emit(word)
			if f.err != nil {
				return i + 1, f.err
			}
		}
	}
	return len(p), nil
}

// Close renders the final zero padded word, if any.
func (f *Formatter) Close() error {
	if f.err != nil {
		return f.err
	}
	if word, ok := f.acc.flush(); ok {
		f.emit(word)
	}
	return f.err
}

// Words returns the number of words rendered so far.
func (f *Formatter) Words() int { return f.words }

// Consumed returns the number of input bytes packed so far.
func (f *Formatter) Consumed() int { return f.consumed }

func (f *Formatter) emit(word uint32) {
	buf := f.scratch[:0]
	if f.needComma {
		buf = append(buf, ", "...)
	}
	if f.needNewline {
		buf = append(buf, "\n\t"...)
	}
	buf = append(buf, "0x"...)
	for shift := (f.width.Digits() - 1) * 4; shift >= 0; shift -= 4 {
		buf = append(buf, hexDigits[(word>>uint(shift))&0xf])
	}
	f.scratch = buf

	if _, err := f.w.Write(buf); err != nil {
		f.err = err
		return
	}

	f.words++
	f.needComma = true
	f.needNewline = f.consumed%BytesPerRow == 0
}

// Format renders data as an array body and returns the number of words written.
func Format(w io.Writer, data []byte, width WordWidth) (int, error) {
	f := NewFormatter(w, width)
	if _, err := f.Write(data); err != nil {
		return f.Words(), err
	}
	if err := f.Close(); err != nil {
		return f.Words(), err
	}
	return f.Words(), nil
}
