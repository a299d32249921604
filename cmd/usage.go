package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/xll-gen/bin2c/internal/compress"
)

const aboutText = `Bin2C converts a binary file to a C array declaration.

Usage: bin2c input_file [output_file] [options]

Command line arguments:
  input_file         The binary file to convert.
  output_file        The name of the generated file with the array declaration.

`

const optionsText = `Options:
  -a|--append         Append to the output file instead of overwriting.
  -b|--bits <number>  Set the width of the array elements (default = 8).
  -c|--config <file>  Read default options from a YAML file.
     --compress <name>
                      Compress the data before conversion (%s).
                      Adds a '<label>_size_uncompressed' declaration.
  -d|--define         Declare the array size as a #define, instead of a
                      'const int'.
  -h|--help           Show brief help.
  -l|--label <name>   Set the symbol name for the array. In the label name,
                      '$*' is replaced with the base filename (no extension)
                      and '$@' is replaced with the full filename. The default
                      label name is '$*'.
     --log-file <path>
                      Write log records to a file instead of stderr.
     --log-level <level>
                      Log level: debug, info, warn or error (default = warn).
  -m|--mutable        Declare the array as mutable (non-const).
  -t|--text           Open the input file as a text file (strip CR before LF).
  -v|--verbose        Print a summary after conversion.
  -z|--zero           Append a zero terminator at the end of the array.

`

// printAbout writes the usage text. A non-empty reason replaces the
// introduction with an error line.
func printAbout(w io.Writer, reason string) {
	if reason == "" {
		io.WriteString(w, aboutText)
	} else {
		fmt.Fprintf(w, "ERROR: Invalid option (%s).\n\n", strings.TrimSuffix(reason, "."))
	}
	fmt.Fprintf(w, optionsText, strings.Join(compress.Names(), ", "))
}
