// Package cli wires the uekit commands: discovery listing and engine
// resolution for Unreal projects.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/unrealkit/uekit/internal/config"
	"github.com/unrealkit/uekit/internal/engine"
	"github.com/unrealkit/uekit/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// warningStyle colors user-facing warnings on interactive terminals.
var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) //nolint:gochecknoglobals // Render-only style

type configKey struct{}

// NewRootCmd creates the root Cobra command backed by the real host.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithHost(ver, engine.DefaultHost())
}

// NewRootCmdWithHost creates the root command with an explicit host so tests
// can inject fake environments, filesystems, and command runners.
func NewRootCmdWithHost(ver string, h engine.Host) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uekit",
		Short:   "Locate Unreal Engine installations and resolve project engines",
		Long:    "uekit discovers Unreal Engine installations on this machine and resolves which one a project should build with",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewListCmd(h), NewResolveCmd(h))

	return cmd
}

const rootCmdExample = `  # List every engine installation found on this machine
  uekit list

  # Resolve the engine for the project in the current directory
  uekit resolve --project .

  # Resolve against an explicit engine path, skipping discovery
  uekit resolve --engine-path /opt/unreal/UE_5.3

  # Emit the resolution as JSON for other tooling
  uekit resolve --project MyGame.uproject --json`

// setupLogging configures logging from the config file and CLI flags and
// threads the configuration, logger, and a trace ID through the command
// context.
func setupLogging(cmd *cobra.Command) {
	cfg, cfgErr := config.Load()
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	} else if isTerminal(os.Stderr) {
		loggingCfg.Format = "console"
	}

	log := logging.New(logging.Config{
		Level:  loggingCfg.Level,
		Format: loggingCfg.Format,
		File:   loggingCfg.File,
	})
	logger = logging.ComponentLogger(log, "cli")

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("could not load config file, using defaults")
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	traced := logger.With().Str("trace_id", traceID).Logger()
	ctx = traced.WithContext(ctx)
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
}

// configFromCmd returns the configuration attached by setupLogging, or
// defaults when a command runs without the root pre-run (tests).
func configFromCmd(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// printWarnings writes resolution warnings to stderr, colored when the
// output is an interactive terminal.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		msg := "Warning: " + w
		if isTerminal(os.Stderr) {
			msg = warningStyle.Render(msg)
		}
		cmd.PrintErrln(msg)
	}
}
