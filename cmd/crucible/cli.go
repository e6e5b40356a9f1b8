package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// appConfig is the validated command line.
type appConfig struct {
	InputPath  string
	ConfigPath string
	LogFormat  string
	LogLevel   slog.Level
	ShowPath   bool
	Verify     bool
}

// parseArgs processes command-line arguments. It returns a populated
// appConfig, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func parseArgs(args []string, output io.Writer) (*appConfig, bool, error) {
	flagSet := flag.NewFlagSet("crucible", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
crucible - minimum heat loss for run-constrained crucibles.

Usage:
  crucible [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Digit grid, one row per line. "-" reads standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the digit grid (\"-\" for stdin).")
	configFlag := flagSet.String("config", "", "Path to an HCL run file. Defaults to part1 (0..3) and part2 (4..10).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pathFlag := flagSet.Bool("path", false, "Print the cells of each optimal path.")
	verifyFlag := flagSet.Bool("verify", false, "Re-check each optimal path against the run rules.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *inputFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected at most one GRID_PATH argument"}
	}
	if path == "" && *configFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &appConfig{
		InputPath:  path,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   level,
		ShowPath:   *pathFlag,
		Verify:     *verifyFlag,
	}, false, nil
}

// newLogger builds the configured slog handler over w.
func newLogger(w io.Writer, cfg *appConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
