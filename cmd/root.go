package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2c/internal/config"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/generator"
	"github.com/xll-gen/bin2c/internal/ui"
	"github.com/xll-gen/bin2c/pkg/log"
)

var (
	// errShowUsage asks Execute to print the full usage text.
	errShowUsage = errors.New("usage requested")
	// errInvalidOption marks flag parsing failures, reported with the option list.
	errInvalidOption = errors.New("invalid option")
)

// options collects the command line state of one invocation.
type options struct {
	flags      config.Config
	configPath string
	verbose    bool
	help       bool

	rawArgs   int
	usageSeen bool
}

// newRootCmd builds the bin2c command. Output that is not the generated file
// goes to stdout (summary) and stderr (diagnostics and usage).
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *options) {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "bin2c input_file [output_file]",
		Short: "Convert a binary file to a C array declaration",
		Long: `bin2c converts a binary file into a C array of 8, 16 or 32 bit words plus a
size constant, for embedding resources directly into a compiled program.`,
		Args:          o.validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, stdout)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&o.flags.Append, "append", "a", false, "Append to the output file instead of overwriting")
	f.IntVarP(&o.flags.Bits, "bits", "b", 8, "Width of the array elements (8, 16 or 32)")
	f.StringVarP(&o.configPath, "config", "c", "", "Read default options from a YAML file")
	f.StringVar(&o.flags.Compress, "compress", "none", "Compress the data before conversion")
	f.BoolVarP(&o.flags.Define, "define", "d", false, "Declare the array size as a #define")
	f.BoolVarP(&o.help, "help", "h", false, "Show brief help")
	f.StringVarP(&o.flags.Label, "label", "l", "$*", "Symbol name template for the array")
	f.StringVar(&o.flags.Logging.Path, "log-file", "", "Write log records to a file")
	f.StringVar(&o.flags.Logging.Level, "log-level", "warn", "Log level (debug, info, warn, error)")
	f.BoolVarP(&o.flags.Mutable, "mutable", "m", false, "Declare the array as mutable")
	f.BoolVarP(&o.flags.Text, "text", "t", false, "Strip CR before LF in the input")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Print a summary after conversion")
	f.BoolVarP(&o.flags.Zero, "zero", "z", false, "Append a zero terminator")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.Wrap(errs.InvalidArgument, err.Error(), fmt.Errorf("%w: %w", errInvalidOption, err))
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		o.usageSeen = true
		printAbout(c.ErrOrStderr(), "")
	})

	return cmd, o
}

func (o *options) validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case o.rawArgs == 0:
		return errShowUsage
	case len(args) == 0:
		return errs.New(errs.InvalidArgument, "No input file. Use 'bin2c --help' for usage information.")
	case len(args) > 2:
		return errs.New(errs.InvalidArgument, "Too many filenames. Use 'bin2c --help' for usage information.")
	}
	return nil
}

// resolveConfig layers defaults, the optional YAML file and the flags that
// were set explicitly. Explicit values, zero ones included, are validated as
// given.
func (o *options) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		if err := config.Load(o.configPath, cfg); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	overrides := map[string]func(){
		"append":    func() { cfg.Append = o.flags.Append },
		"bits":      func() { cfg.Bits = o.flags.Bits },
		"compress":  func() { cfg.Compress = o.flags.Compress },
		"define":    func() { cfg.Define = o.flags.Define },
		"label":     func() { cfg.Label = o.flags.Label },
		"log-file":  func() { cfg.Logging.Path = o.flags.Logging.Path },
		"log-level": func() { cfg.Logging.Level = o.flags.Logging.Level },
		"mutable":   func() { cfg.Mutable = o.flags.Mutable },
		"text":      func() { cfg.Text = o.flags.Text },
		"zero":      func() { cfg.Zero = o.flags.Zero },
	}
	for name, apply := range overrides {
		if f.Changed(name) {
			apply()
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) run(cmd *cobra.Command, args []string, stdout io.Writer) error {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return errs.Wrap(errs.IO, fmt.Sprintf("Failed to open log file %s: %v", cfg.Logging.Path, err), err)
	}
	defer log.Close()

	var output string
	if len(args) > 1 {
		output = args[1]
	}

	res, err := generator.Generate(cfg, args[0], output)
	if err != nil {
		return err
	}

	if o.verbose {
		ui.PrintSummary(stdout, ui.Summary{
			Input:       res.Input,
			Output:      res.Output,
			Symbol:      res.Symbol,
			Bits:        res.Bits,
			Codec:       res.Codec,
			InputBytes:  res.InputBytes,
			PackedBytes: res.PackedBytes,
			Elements:    res.Elements,
		})
	}
	return nil
}

// run executes bin2c with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd, o := newRootCmd(stdout, stderr)
	o.rawArgs = len(args)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.Execute()
	switch kind := errs.KindOf(err); {
	case err == nil && o.usageSeen:
		return 1
	case err == nil:
		return 0
	case errors.Is(err, errShowUsage):
		printAbout(stderr, "")
	case kind == errs.InvalidArgument && errors.Is(err, errInvalidOption):
		// Flag parsing failures list the options; bad file arguments do not.
		printAbout(stderr, err.Error())
	default:
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
	}
	return 1
}

// Execute runs the command line and exits with status 0 on success and 1 on
// any failure. This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
