package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lifesim/internal/app"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the app config, whether
// the program should exit cleanly right away (help was requested), or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lifesim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Life Simulation - an offline adventure and simulation RPG.

Usage:
  lifesim [options]

Without options the introduction and the element chart are printed.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl settings file or a directory of them.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for every random source. 0 uses the settings seed or the clock.")
	previewFlag := flagSet.Bool("preview", false, "Deal and print one board of each minigame.")
	saveFlag := flagSet.String("save", "", "Save file to load at start and write back at the end.")
	serveFlag := flagSet.Bool("serve", false, "Serve match-3 games over socket.io until interrupted.")
	colorFlag := flagSet.Bool("color", false, "Colour section headings.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: *configFlag,
		SavePath:   *saveFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Seed:       *seedFlag,
		Preview:    *previewFlag,
		Serve:      *serveFlag,
		Color:      *colorFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
