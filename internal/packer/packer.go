// Package packer groups bytes into little-endian words and renders them as the
// body of a C array initializer.
package packer

import (
	"fmt"

	"github.com/xll-gen/bin2c/internal/errs"
)

// BytesPerRow is the number of source bytes rendered on one line of output,
// whatever the word width.
const BytesPerRow = 16

// WordWidth is the bit width of one array element.
type WordWidth uint

const (
	Width8  WordWidth = 8
	Width16 WordWidth = 16
	Width32 WordWidth = 32
)

// ParseWidth converts a bit count into a WordWidth.
func ParseWidth(bits int) (WordWidth, error) {
	w := WordWidth(bits)
	if bits < 0 || !w.Valid() {
		return 0, errs.New(errs.InvalidConfiguration, "Invalid bit size (must be 8, 16 or 32).")
	}
	return w, nil
}

// Valid reports whether w is one of the supported widths.
func (w WordWidth) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Bytes returns the number of input bytes that make up one word.
func (w WordWidth) Bytes() int { return int(w) / 8 }

// Digits returns the number of hex digits a word is padded to.
func (w WordWidth) Digits() int { return int(w) / 4 }

// CType returns the fixed width C integer type for w.
func (w WordWidth) CType() string { return fmt.Sprintf("uint%d_t", uint(w)) }

// WordsPerRow returns how many words fit on one output row.
func (w WordWidth) WordsPerRow() int { return BytesPerRow / w.Bytes() }

// ElementCount returns the number of words needed to hold length bytes.
// A short trailing group still occupies a whole word.
func ElementCount(length int, w WordWidth) int {
	n := w.Bytes()
	return (length + n - 1) / n
}

// accumulator assembles little-endian words one byte at a time.
type accumulator struct {
	width WordWidth
	word  uint32
	bits  uint
}

// add places b above the bytes already held and reports whether the word is
// now complete. A complete word is returned and the accumulator reset.
func (a *accumulator) add(b byte) (uint32, bool) {
	a.word |= uint32(b) << a.bits
	a.bits += 8
	if a.bits < uint(a.width) {
		return 0, false
	}
	w := a.word
	a.word, a.bits = 0, 0
	return w, true
}

// flush returns the pending partial word, zero padded, if there is one.
func (a *accumulator) flush() (uint32, bool) {
	if a.bits == 0 {
		return 0, false
	}
	w := a.word
	a.word, a.bits = 0, 0
	return w, true
}

// Pack groups data into words of width w. Byte 0 of each group lands in the
// least significant bits; a short final group is zero padded.
func Pack(data []byte, w WordWidth) []uint32 {
	words := make([]uint32, 0, ElementCount(len(data), w))
	acc := accumulator{width: w}
	for _, b := range data {
		if word, ok := acc.add(b); ok {
			words = append(words, word)
		}
	}
	if word, ok := acc.flush(); ok {
		words = append(words, word)
	}
	return words
}

// Unpack reverses Pack, returning the first length bytes held by words.
func Unpack(words []uint32, w WordWidth, length int) []byte {
	n := w.Bytes()
	out := make([]byte, 0, len(words)*n)
	for _, word := range words {
		for i := 0; i < n; i++ {
			out = append(out, byte(word>>(8*i)))
		}
	}
	if length < len(out) {
		out = out[:length]
	}
	return out
}
