package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"asset-packer/internal/config"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitStale   = 3
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options are the parsed command-line options.
type Options struct {
	ConfigPath string
	Root       string
	Out        string
	Check      bool
	LogLevel   zerolog.Level
}

// Parse processes command-line arguments. It returns the options, a flag
// telling the caller to exit cleanly (help was printed), or an ExitError.
// With no arguments the defaults reproduce the firmware build layout.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	defaults := config.Default()

	flagSet := pflag.NewFlagSet("asset-packer", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `asset-packer - gzip web UI assets into a PROGMEM C header.

Usage:
  asset-packer [flags]

Flags:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}

	var logLevel string

	flagSet.StringVar(&opts.ConfigPath, "config", "", "optional YAML file overriding the built-in configuration")
	flagSet.StringVar(&opts.Root, "root", "", "asset directory (default "+defaults.AssetRoot+")")
	flagSet.StringVar(&opts.Out, "out", "", "generated header path (default "+defaults.OutputPath+")")
	flagSet.BoolVar(&opts.Check, "check", false, "compare with the existing header instead of writing it")
	flagSet.StringVar(&logLevel, "log-level", "info", "diagnostics level: debug, info, warn or error")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "unexpected argument: " + flagSet.Arg(0)}
	}

	switch strings.ToLower(logLevel) {
	case "debug":
		opts.LogLevel = zerolog.DebugLevel
	case "info":
		opts.LogLevel = zerolog.InfoLevel
	case "warn":
		opts.LogLevel = zerolog.WarnLevel
	case "error":
		opts.LogLevel = zerolog.ErrorLevel
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return opts, false, nil
}

// Config builds the packer configuration: defaults, then the YAML file if
// one was given, then the path flags.
func (o *Options) Config() (*config.Config, error) {
	cfg := config.Default()

	if o.ConfigPath != "" {
		loaded, err := config.LoadFile(o.ConfigPath, cfg)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if o.Root != "" {
		cfg.AssetRoot = o.Root
	}

	if o.Out != "" {
		cfg.OutputPath = o.Out
	}

	cfg.Normalize()

	if diags := cfg.Validate(); diags.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", diags.Error())
	}

	return cfg, nil
}
