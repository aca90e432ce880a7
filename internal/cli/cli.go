package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/patternlab/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("patternlab", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
patternlab - A registry of classic design-pattern demonstrations.

Usage:
  patternlab [options] COMMAND [EXAMPLE]

Commands:
  list
    Print all registered example names, in registration order.
  run EXAMPLE
    Run one example and print its output lines.
  run-all
    Run every registered example, each printed under its own header.

Options:
`)
		flagSet.PrintDefaults()
	}

	suiteFlag := flagSet.String("suite", "", "Path to a suite .hcl file or directory.")
	sFlag := flagSet.String("s", "", "Path to a suite .hcl file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	command := flagSet.Arg(0)
	exampleName := ""
	if flagSet.NArg() > 1 {
		exampleName = flagSet.Arg(1)
	}
	if flagSet.NArg() > 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected extra arguments: %s", strings.Join(flagSet.Args()[2:], " "))}
	}
	slog.Debug("Command determined.", "command", command, "example", exampleName)

	suitePath := *suiteFlag
	if suitePath == "" {
		suitePath = *sFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:     command,
		ExampleName: exampleName,
		SuitePath:   suitePath,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
