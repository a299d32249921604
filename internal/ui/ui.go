package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
)

var (
	// ANSI Colors
	ColorReset = "\033[0m"
	ColorGreen = "\033[32m"
	ColorBold  = "\033[1m"
)

// Summary is what a completed conversion reports to the user.
type Summary struct {
	Input       string
	Output      string
	Symbol      string
	Bits        int
	Codec       string
	InputBytes  int
	PackedBytes int
	Elements    int
}

func PrintHeader(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

// PrintSummary writes a short report of a conversion.
func PrintSummary(w io.Writer, s Summary) {
	PrintHeader(w, "Bin2C")
	PrintSuccess(w, "Input", fmt.Sprintf("%s (%s)", s.Input, humanize.IBytes(uint64(s.InputBytes))))
	if s.Codec != "" && s.Codec != "none" {
		ratio := 0.0
		if s.InputBytes > 0 {
			ratio = 100 * float64(s.PackedBytes) / float64(s.InputBytes)
		}
		PrintSuccess(w, "Compressed", fmt.Sprintf("%s, %s (%.1f%%)", s.Codec, humanize.IBytes(uint64(s.PackedBytes)), ratio))
	}
	PrintSuccess(w, "Symbol", s.Symbol)
	PrintSuccess(w, "Elements", humanize.Comma(int64(s.Elements))+" x uint"+strconv.Itoa(s.Bits)+"_t")
	PrintSuccess(w, "Output", s.Output)
}
