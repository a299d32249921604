// Package symbol derives C identifiers and output file names from input paths.
package symbol

import (
	"strings"

	"github.com/xll-gen/bin2c/internal/errs"
)

const (
	// BaseToken is replaced with the input file name without directory and extension.
	BaseToken = "$*"
	// FullToken is replaced with the input file name without directory.
	FullToken = "$@"
	// DefaultLabel is used when no label is given.
	DefaultLabel = BaseToken
)

// Names splits path into its file name and that name without its extension.
// Both '/' and '\' count as directory separators.
func Names(path string) (base, full string) {
	full = path
	if i := strings.LastIndexAny(full, `/\`); i >= 0 {
		full = full[i+1:]
	}
	base = full
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base, full
}

// Substitute expands the label tokens in template. Tokens are matched left to
// right; text that is not a token is copied unchanged.
func Substitute(template, base, full string) string {
	var sb strings.Builder
	sb.Grow(len(template) + len(base) + len(full))
	for i := 0; i < len(template); {
		switch {
		case strings.HasPrefix(template[i:], BaseToken):
			sb.WriteString(base)
			i += len(BaseToken)
		case strings.HasPrefix(template[i:], FullToken):
			sb.WriteString(full)
			i += len(FullToken)
		default:
			sb.WriteByte(template[i])
			i++
		}
	}
	return sb.String()
}

// Sanitize turns s into a legal C identifier by replacing every offending
// byte with an underscore. The result always has the same length as s.
func Sanitize(s string) string {
	b := []byte(s)
	for i, c := range b {
		if isAlpha(c) || c == '_' || (i > 0 && isDigit(c)) {
			continue
		}
		b[i] = '_'
	}
	return string(b)
}

// Resolve returns the sanitized symbol name for label applied to inputPath.
// A label that expands to nothing, the empty label included, is an error.
func Resolve(label, inputPath string) (string, error) {
	base, full := Names(inputPath)
	name := Substitute(label, base, full)
	if name == "" {
		return "", errs.New(errs.InvalidConfiguration, "Label '"+label+"' expands to an empty symbol name.")
	}
	return Sanitize(name), nil
}

// OutputName returns the default header name for input: the extension of
// the file name, if any, is replaced by ".h".
func OutputName(input string) string {
	dir := strings.LastIndexAny(input, `/\`)
	if dot := strings.LastIndexByte(input, '.'); dot > dir {
		input = input[:dot]
	}
	return input + ".h"
}

func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
