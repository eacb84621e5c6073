// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argspec checks an argument vector against the built-in command
// schema and prints the normalized result.
//
//	argspec [flags] -- COMMAND [-option [value...]]...
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argspec/pkg/argparse"
	"github.com/yeetrun/argspec/pkg/schema"
)

// Exit codes.
const (
	exitOK    = 0
	exitArgs  = 1 // the checked arguments were rejected
	exitUsage = 2 // argspec itself was misused or misconfigured
)

// argsSentinel ends argspec's own flags.
const argsSentinel = "--"

type globalFlags struct {
	Config        string `flag:"config" help:"Path to argspec.toml (default: nearest one above the working directory)"`
	Format        string `flag:"format" help:"Output format (text|json|yaml)"`
	Color         string `flag:"color" help:"Color output (auto|always|never)"`
	CaseSensitive *bool  `flag:"case-sensitive" help:"Compare names and restricted values exactly"`
	IgnoreUnknown *bool  `flag:"ignore-unknown" help:"Drop unknown options and their values"`
	StripQuotes   *bool  `flag:"strip-quotes" help:"Strip one pair of surrounding quotes from values"`
	Verbose       bool   `flag:"verbose" short:"v" help:"Trace every token"`
	Help          bool   `flag:"help" short:"h" help:"Show this help"`
}

const usage = `Usage: argspec [flags] -- COMMAND [-option [value...]]...

Checks the arguments after "--" against the built-in schema and prints the
result. Use "argspec -- HELP" to list the available commands.

Flags:
  --config FILE          Path to argspec.toml
  --format FORMAT        Output format: text, json or yaml (default text)
  --color MODE           Color output: auto, always or never (default auto)
  --case-sensitive       Compare names and restricted values exactly
  --ignore-unknown       Drop unknown options and their values
  --strip-quotes[=BOOL]  Strip one pair of surrounding quotes (default true)
  -v, --verbose          Trace every token
  -h, --help             Show this help
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// splitArgs separates argspec's own flags from the argument vector to check.
// Only the first "--" separates; later ones belong to the vector.
func splitArgs(args []string) (own, argv []string) {
	i := slices.Index(args, argsSentinel)
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer) int {
	own, argv := splitArgs(args)
	parsed, err := yargs.ParseKnownFlags[globalFlags](own, yargs.KnownFlagsOptions{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	flags := parsed.Flags
	if flags.Help {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	if len(parsed.RemainingArgs) > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q (put the arguments to check after %q)\n", parsed.RemainingArgs[0], argsSentinel)
		return exitUsage
	}

	logger := newLogger(stderr, flags.Verbose)
	cfg, path, err := loadConfig(flags.Config, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	format := firstNonEmpty(flags.Format, cfg.Output.Format, formatText)
	colorMode := firstNonEmpty(flags.Color, cfg.Output.Color, colorAuto)
	for _, err := range []error{checkFormat(format), checkColorMode(colorMode)} {
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
	}

	s := demoSchema()
	cfg.Parse.apply(&s)
	ParseConfig{
		CaseSensitive: flags.CaseSensitive,
		IgnoreUnknown: flags.IgnoreUnknown,
		StripQuotes:   flags.StripQuotes,
	}.apply(&s)

	e, err := argparse.New(s, argparse.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	res, err := e.Parse(argv)
	if err != nil {
		ep := newPalette(colorMode, stderr)
		var ae *argparse.Error
		if errors.As(err, &ae) {
			logger.Debug("arguments rejected", "kind", ae.Kind, "option", ae.Option, "token", ae.Token)
		}
		fmt.Fprintf(stderr, "%s %v\n", ep.err.Sprint("Error:"), err)
		return exitArgs
	}

	p := newPalette(colorMode, stdout)
	if res.Command == schema.HelpCommand {
		err = writeHelp(stdout, e.Schema(), p)
	} else {
		err = writeResult(stdout, res.Tree(), format, p)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	return exitOK
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
