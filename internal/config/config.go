package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xll-gen/bin2c/internal/compress"
	"github.com/xll-gen/bin2c/internal/errs"
	"github.com/xll-gen/bin2c/internal/packer"
	"github.com/xll-gen/bin2c/internal/symbol"
	"gopkg.in/yaml.v3"
)

// Config holds every option of a conversion run. It is filled from defaults,
// then an optional YAML file, then the command line.
type Config struct {
	// Bits is the element width of the generated array (8, 16 or 32).
	Bits int `yaml:"bits"`
	// Label is the symbol name template. "$*" expands to the input base name
	// and "$@" to the full input file name.
	Label string `yaml:"label"`
	// Define declares the sizes as #define macros instead of const ints.
	Define bool `yaml:"define"`
	// Mutable drops the const qualifier from the array.
	Mutable bool `yaml:"mutable"`
	// Text strips CR before LF in the input.
	Text bool `yaml:"text"`
	// Zero appends a zero terminator to the input.
	Zero bool `yaml:"zero"`
	// Append adds to the output file instead of overwriting it.
	Append bool `yaml:"append"`
	// Compress names the codec applied before packing ("none" to disable).
	Compress string `yaml:"compress"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads a YAML option file into cfg. Keys absent from the file leave
// the corresponding fields of cfg untouched.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrap(errs.IO, fmt.Sprintf("Failed to read config %s.", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errs.Wrap(errs.InvalidConfiguration, fmt.Sprintf("Failed to parse config %s: %v", path, err), err)
	}
	return nil
}

// Default returns a Config holding only default values. Layers applied on top
// of it (Load, command line flags) may set any field, zero values included,
// and Validate sees exactly what they set.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for configuration fields that are missing.
// A zero field counts as missing, so it is only meant for a fresh Config;
// use Default before layering explicit values.
func ApplyDefaults(config *Config) {
	if config.Bits == 0 {
		config.Bits = int(packer.Width8)
	}
	if config.Label == "" {
		config.Label = symbol.DefaultLabel
	}
	if config.Compress == "" {
		config.Compress = compress.None
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
}

// Validate checks the configuration for errors before any file is touched.
func Validate(config *Config) error {
	if _, err := packer.ParseWidth(config.Bits); err != nil {
		return err
	}

	if _, err := compress.Lookup(config.Compress); err != nil {
		return err
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return errs.New(errs.InvalidConfiguration,
				fmt.Sprintf("Invalid logging level: %s (allowed: debug, info, warn, error).", config.Logging.Level))
		}
	}

	return nil
}

// Width returns the validated word width.
func (c *Config) Width() packer.WordWidth {
	return packer.WordWidth(c.Bits)
}
