package cmd

import "strings"

// normalizeArgs rewrites the option spellings accepted by earlier bin2c
// releases into the form pflag understands: "-?" becomes "--help" and values
// glued to long options ("--bits16", "--labelfoo") get an "=".
// Short options with glued values ("-b16", "-lfoo") are native to pflag.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		switch {
		case a == "-?":
			a = "--help"
		case glued(a, "--bits"):
			a = "--bits=" + a[len("--bits"):]
		case glued(a, "--label"):
			a = "--label=" + a[len("--label"):]
		}
		out = append(out, a)
	}
	return out
}

func glued(arg, flag string) bool {
	return len(arg) > len(flag) && strings.HasPrefix(arg, flag) && arg[len(flag)] != '='
}
