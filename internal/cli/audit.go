package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/audit"
	"github.com/hupe1980/pomgen/internal/logging"
)

type auditOptions struct {
	generateOptions

	format      string
	failOn      string
	policyPaths []string
}

func newAuditCommand() *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [descriptor]",
		Short: "Run best-practice audits on the generated build",
		Long: `Audit builds the project from a descriptor, applies the enabled
conventions and examines the result against built-in rules (POM-001 through
POM-006) and any custom policies supplied via --policy.

Use --fail-on to set a severity threshold: the command exits with
code 9 if any finding meets or exceeds the threshold.

Output formats: table (default), json, sarif.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd.Context(), cmd, descriptorArg(args), opts)
		},
	}

	registerGenerateFlags(cmd, &opts.generateOptions)

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "table", "output format: table, json, sarif")
	f.StringVar(&opts.failOn, "fail-on", "", "fail with exit code 9 if findings >= severity (critical, high, medium, low, info)")
	f.StringArrayVar(&opts.policyPaths, "policy", nil, "custom policy YAML files (can specify multiple)")

	return cmd
}

func runAudit(ctx context.Context, cmd *cobra.Command, path string, opts *auditOptions) error {
	logger := logging.FromContext(ctx)

	formatter, err := audit.NewFormatter(opts.format, path)
	if err != nil {
		return &ExitError{Code: ExitCodeUsage, Err: err}
	}

	var threshold audit.Severity
	if opts.failOn != "" {
		if threshold, err = audit.ParseSeverity(opts.failOn); err != nil {
			return &ExitError{Code: ExitCodeUsage, Err: err}
		}
	}

	checks := audit.DefaultChecks()

	for _, p := range opts.policyPaths {
		pf, loadErr := audit.LoadPolicyFile(p)
		if loadErr != nil {
			return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf("loading policy: %w", loadErr)}
		}

		checks = append(checks, pf.ToChecks()...)

		logger.Info("audit: loaded custom policy",
			slog.String("path", p),
			slog.Int("rules", len(pf.Rules)),
		)
	}

	result, err := generatePom(ctx, path, &opts.generateOptions)
	if err != nil {
		return err
	}

	report := audit.New(checks...).Run(ctx, result.Build)

	if err := formatter.Format(cmd.OutOrStdout(), report); err != nil {
		return &ExitError{Code: ExitCodeError, Err: fmt.Errorf("formatting results: %w", err)}
	}

	if opts.failOn != "" && !report.Passed(threshold) {
		return &ExitError{
			Code: ExitCodeAuditFailed,
			Err:  fmt.Errorf("audit failed: findings at or above %s severity", threshold),
		}
	}

	return nil
}
