package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/pwshcomplete/internal/environment"
	"github.com/atinylittleshell/pwshcomplete/internal/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var BUILD_VERSION = "dev"

// app carries what every subcommand needs.
type app struct {
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal func() bool
	// terminalWidth returns the width of stdout, or 0 if unknown.
	terminalWidth func() int
}

func main() {
	logger, err := initializeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() // Flush any buffered log entries

	// Status lines are written to stderr, so style for its capabilities.
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stderr).ColorProfile())

	a := &app{
		logger:        logger,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		isTerminal:    stdoutIsTerminal,
		terminalWidth: stdoutWidth,
	}

	logger.Debug("-------- new pwshcomplete run --------", zap.Strings("args", os.Args))

	if err := newRootCommand(a).Execute(); err != nil {
		logger.Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, render.Error(err.Error()))
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pwshcomplete",
		Short: "Generate PowerShell tab completion scripts from command definitions",
		Long: `pwshcomplete turns a YAML description of a program's commands, options and
flags into a PowerShell script that registers tab completion for the program.

Examples:
  pwshcomplete generate -d app.yaml > _app.ps1
  pwshcomplete generate -d app.yaml --install
  pwshcomplete preview -d app.yaml "app run --"
  pwshcomplete tree -d app.yaml`,
		Version:       BUILD_VERSION,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newGenerateCommand(a),
		newPreviewCommand(a),
		newTreeCommand(a),
		newCompletionCommand(a),
	)

	return root
}

func initializeLogger() (*zap.Logger, error) {
	logLevel := environment.GetLogLevel()
	// Dev builds log everything, but only when logs go to a file.
	if BUILD_VERSION == "dev" && environment.GetLogFile() != "stderr" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		environment.GetLogFile(),
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
