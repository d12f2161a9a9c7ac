// Package main provides the CLI entrypoint for asset-packer.
//
// asset-packer is a build step for the controller firmware:
//   - Scans the web UI directory for HTML, JS, CSS, SVG, ICO and PNG files
//   - Gzips each file at the best compression level
//   - Emits src/www.h with one PROGMEM byte array, length and MIME type per
//     file
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"asset-packer/internal/cli"
	"asset-packer/internal/discover"
	"asset-packer/internal/packer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])

	stop()
	os.Exit(code)
}

// run executes one packing pass and returns the process exit code.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}

	if shouldExit {
		return cli.ExitOK
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(opts.LogLevel).
		With().Timestamp().Logger()

	cfg, err := opts.Config()
	if err != nil {
		logger.Error().Err(err).Msg("configuration failed")
		return cli.ExitFailure
	}

	logger.Debug().
		Str("root", cfg.AssetRoot).
		Str("output", cfg.OutputPath).
		Strs("extensions", cfg.SupportedExtensions).
		Bool("check", opts.Check).
		Msg("starting")

	p := packer.New(cfg,
		packer.WithOutput(stdout),
		packer.WithLogger(logger),
		packer.WithCheck(opts.Check),
	)

	res, err := p.Run(ctx)
	if err != nil {
		var cfgErr *discover.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Error().Str("root", cfgErr.Root).Msg(cfgErr.Error())
		} else {
			logger.Error().Err(err).Str("stage", p.Stage().String()).Msg("packing failed")
		}

		return cli.ExitFailure
	}

	for _, i := range res.Diagnostics.Infos {
		logger.Debug().Str("code", i.Code).Msg(i.String())
	}

	for _, w := range res.Diagnostics.Warnings {
		logger.Warn().Str("code", w.Code).Msg(w.String())
	}

	if res.Staleness != nil && !res.Staleness.Fresh() {
		return cli.ExitStale
	}

	return cli.ExitOK
}

func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return cli.ExitFailure
}
