package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/config"
	"github.com/hupe1980/pomgen/internal/logging"
	"github.com/hupe1980/pomgen/internal/output"
	"github.com/hupe1980/pomgen/pkg/pomgen"
)

type generateCommandOptions struct {
	generateOptions

	dryRun        bool
	skipUnchanged bool
}

func newGenerateCommand() *cobra.Command {
	opts := &generateCommandOptions{}

	cmd := &cobra.Command{
		Use:   "generate [descriptor]",
		Short: "Generate a pom.xml from a project descriptor",
		Long: `Generate reads a YAML or TOML project descriptor (default: pomgen.yaml),
applies the enabled conventions and writes the resulting pom.xml.

Exit codes:
  0  Success
  1  Error
  2  Invalid arguments or configuration
  3  Invalid descriptor
  6  The pom could not be written`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd, descriptorArg(args), opts)
		},
	}

	registerGenerateFlags(cmd, &opts.generateOptions)
	registerOutputFlags(cmd)

	f := cmd.Flags()
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the pom to stdout instead of writing it")
	f.BoolVar(&opts.skipUnchanged, "skip-unchanged", true, "leave the output file untouched when its content is identical")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, path string, opts *generateCommandOptions) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	result, err := generatePom(ctx, path, &opts.generateOptions)
	if err != nil {
		return err
	}

	if opts.dryRun || cfg.Output == "-" {
		if opts.dryRun {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "# Dry-run mode, output preview:")
		}

		if err := output.NewStdoutWriter(cmd.OutOrStdout()).Write(result.XML); err != nil {
			return &ExitError{Code: ExitCodeWriteFailed, Err: err}
		}

		return nil
	}

	fileOpts := []output.FileWriterOption{output.WithLogger(logger)}
	if opts.skipUnchanged {
		fileOpts = append(fileOpts, output.WithSkipUnchanged())
	}

	w := output.NewFileWriter(cfg.Output, fileOpts...)
	if err := w.Write(result.XML); err != nil {
		return &ExitError{Code: ExitCodeWriteFailed, Err: fmt.Errorf("writing output: %w", err)}
	}

	logger.Info("pom written", slog.String("path", w.Path()), slog.Bool("changed", w.Changed()))

	if !cfg.Quiet {
		printGenerateSummary(cmd.ErrOrStderr(), result, w)
	}

	return nil
}

// generatePom runs the library pipeline with settings merged from flags,
// the config file and the conventions config.
func generatePom(ctx context.Context, path string, opts *generateOptions) (*pomgen.Result, error) {
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	convCfg, err := config.LoadConventionsConfig(config.ConfigFileFromContext(ctx))
	if err != nil {
		return nil, &ExitError{Code: ExitCodeUsage, Err: err}
	}

	indent, err := cfg.IndentString()
	if err != nil {
		return nil, &ExitError{Code: ExitCodeUsage, Err: err}
	}

	pomOpts := []pomgen.Option{
		pomgen.WithConventions(cfg.Conventions...),
		pomgen.WithPlatformVersion(cfg.PlatformVersion),
		pomgen.WithJavaVersion(cmp.Or(opts.javaVersion, convCfg.JavaVersion)),
		pomgen.WithEncoding(cmp.Or(opts.encoding, convCfg.Encoding)),
		pomgen.WithIndent(indent),
		pomgen.WithLogger(logger),
	}

	for _, r := range convCfg.Rules() {
		pomOpts = append(pomOpts, pomgen.WithParentRules(pomgen.ParentRule(r)))
	}

	result, err := pomgen.Generate(ctx, path, pomOpts...)
	if err != nil {
		return nil, generationExitError(err)
	}

	return result, nil
}

func printGenerateSummary(w io.Writer, result *pomgen.Result, fw *output.FileWriter) {
	status := "written"
	if !fw.Changed() {
		status = "unchanged"
	}

	_, _ = fmt.Fprintf(w, "\n--- Generation Summary ---\n")
	_, _ = fmt.Fprintf(w, "Output:       %s (%s)\n", fw.Path(), status)
	_, _ = fmt.Fprintf(w, "Dependencies: %d\n", len(result.Dependencies))
	_, _ = fmt.Fprintf(w, "Plugins:      %d\n", result.Plugins)
	_, _ = fmt.Fprintf(w, "Profiles:     %d\n", result.Profiles)

	if len(result.Conventions) > 0 {
		_, _ = fmt.Fprintf(w, "Conventions:  %v\n", result.Conventions)
	}
}
