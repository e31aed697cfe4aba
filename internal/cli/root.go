// Package cli implements the cobra command tree for pomgen.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/config"
	"github.com/hupe1980/pomgen/internal/descriptor"
	"github.com/hupe1980/pomgen/internal/logging"
	"github.com/hupe1980/pomgen/internal/pom"
)

// Process exit codes.
const (
	ExitCodeOK                = 0
	ExitCodeError             = 1
	ExitCodeUsage             = 2
	ExitCodeInvalidDescriptor = 3
	ExitCodeWriteFailed       = 6
	ExitCodeValidationFailed  = 7
	ExitCodeDifferences       = 8
	ExitCodeAuditFailed       = 9
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	err := cmd.Execute()
	if err == nil {
		return ExitCodeOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", exitErr.Err)
		}

		return exitErr.Code
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

	return ExitCodeError
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pomgen",
		Short: "Generate Maven pom.xml files from project descriptors",
		Long: `pomgen generates a Maven pom.xml from a small YAML or TOML project
descriptor.

The descriptor lists coordinates, dependencies, boms, plugins, repositories
and profiles. Conventions such as the Spring Boot defaults, integration
tests and Docker packaging can be layered on top. The generated pom is
deterministic: the same descriptor always produces byte-identical output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: ExitCodeUsage, Err: err}
			}

			logger := logging.Setup(cfg)

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = config.NewContextWithConfigFile(ctx, cfg.ConfigFile)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("logLevel", cfg.LogLevel),
				slog.String("logFormat", cfg.LogFormat),
				slog.String("configFile", cfg.ConfigFile),
			)

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .pomgen.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json")
	pf.Bool("no-color", false, "disable colored output")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitCodeUsage, Err: err}
	})

	cmd.AddCommand(
		newVersionCommand(),
		newGenerateCommand(),
		newDiffCommand(),
		newValidateCommand(),
		newWatchCommand(),
		newAuditCommand(),
		newDocsCommand(),
		newConventionsCommand(),
		newCompletionCommand(),
	)

	return cmd
}

// generationExitError maps a generation failure to its exit code.
func generationExitError(err error) error {
	var cfgErr *pom.ConfigError

	switch {
	case errors.Is(err, descriptor.ErrInvalidDescriptor),
		errors.Is(err, descriptor.ErrUnsupportedFormat),
		errors.As(err, &cfgErr):
		return &ExitError{Code: ExitCodeInvalidDescriptor, Err: err}
	default:
		return &ExitError{Code: ExitCodeError, Err: err}
	}
}
