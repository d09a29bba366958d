package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/treemarkgo/internal/app"
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
	flagSet := flag.NewFlagSet("treemarkgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
TreeMarkGo - a declarative markup to render-tree compiler.

Usage:
  treemarkgo [options] [MARKUP_PATH]

Arguments:
  MARKUP_PATH
    Path to a single markup file or a directory containing markup files.

Options:
`)
		flagSet.PrintDefaults()
	}

	markupFlag := flagSet.String("markup", "", "Path to the markup file or directory.")
	mFlag := flagSet.String("m", "", "Path to the markup file or directory (shorthand).")
	componentsPathFlag := flagSet.String("components-path", "modules", "Path to the directory containing component manifests.")
	strictFlag := flagSet.Bool("strict", true, "Fail on unresolvable component tags instead of rendering them literally.")
	workersFlag := flagSet.Int("workers", 10, "Number of concurrent workers for compilation.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	indentFlag := flagSet.Bool("indent", false, "Indent the JSON output.")
	dumpFlag := flagSet.Bool("dump", false, "Dump render trees in debug form instead of JSON.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *markupFlag != "" {
		path = *markupFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Markup path determined.", "path", path)

	if path == "" {
		slog.Debug("No markup path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		MarkupPath:     path,
		ComponentsPath: *componentsPathFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		Strict:         *strictFlag,
		Workers:        *workersFlag,
		Indent:         *indentFlag,
		Dump:           *dumpFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
