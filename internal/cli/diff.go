package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/config"
	"github.com/hupe1980/pomgen/internal/diff"
)

type diffOptions struct {
	generateOptions

	existing string
	exitCode bool
	context  int
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff [descriptor]",
		Short: "Compare the generated pom with an existing pom.xml",
		Long: `Diff generates the pom in memory and prints a unified diff against an
existing pom.xml. Nothing is written.

Exit codes:
  0  Success (or no differences)
  1  Error
  2  Invalid arguments or the existing pom is missing
  3  Invalid descriptor
  8  Differences found (only with --exit-code)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, descriptorArg(args), opts)
		},
	}

	registerGenerateFlags(cmd, &opts.generateOptions)

	f := cmd.Flags()
	f.StringVar(&opts.existing, "existing", "pom.xml", "existing pom.xml to compare against")
	f.BoolVar(&opts.exitCode, "exit-code", false, "exit with code 8 when differences are found")
	f.IntVar(&opts.context, "context", 3, "number of context lines")

	return cmd
}

func runDiff(cmd *cobra.Command, path string, opts *diffOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	existing, err := os.ReadFile(opts.existing) //nolint:gosec // user-provided CLI arg
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ExitError{Code: ExitCodeUsage, Err: fmt.Errorf("existing pom %q not found", opts.existing)}
		}

		return fmt.Errorf("reading existing pom: %w", err)
	}

	result, err := generatePom(ctx, path, &opts.generateOptions)
	if err != nil {
		return err
	}

	diffOpts := diff.DefaultOptions()
	diffOpts.OldLabel = opts.existing
	diffOpts.NewLabel = "generated/" + path
	diffOpts.Context = opts.context

	d, err := diff.Compute(string(existing), string(result.XML), diffOpts)
	if err != nil {
		return fmt.Errorf("computing diff: %w", err)
	}

	diff.Write(cmd.OutOrStdout(), d, !cfg.NoColor && !color.NoColor)

	if opts.exitCode && d.HasDifferences() {
		return &ExitError{Code: ExitCodeDifferences, Err: errors.New("differences found")}
	}

	return nil
}
