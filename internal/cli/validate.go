package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/logging"
	"github.com/hupe1980/pomgen/internal/output"
)

func newValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [pom.xml]",
		Short: "Check a pom.xml for structural errors",
		Long: `Validate checks a pom.xml for the errors Maven would reject: missing
coordinates, incomplete parents, duplicate dependencies, plugins, repositories
and profiles, and misplaced import scopes.

Exit codes:
  0  Valid
  1  Error reading the file
  7  Validation failed (warnings count with --strict)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "pom.xml"
			if len(args) > 0 {
				path = args[0]
			}

			data, err := os.ReadFile(path) //nolint:gosec // user-provided CLI arg
			if err != nil {
				return fmt.Errorf("reading pom: %w", err)
			}

			result := output.ValidatePom(data)

			logging.FromContext(cmd.Context()).Debug("validated pom",
				"path", path,
				"errors", len(result.Errors()),
				"warnings", len(result.Warnings()),
			)

			if len(result.Findings) > 0 {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), output.FormatValidationResult(result))
			}

			if result.HasErrors() || (strict && result.HasWarnings()) {
				return &ExitError{Code: ExitCodeValidationFailed, Err: errors.New("validation failed")}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
