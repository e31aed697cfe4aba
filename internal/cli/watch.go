package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/config"
	"github.com/hupe1980/pomgen/internal/logging"
	"github.com/hupe1980/pomgen/internal/output"
	"github.com/hupe1980/pomgen/internal/watch"
)

type watchOptions struct {
	generateOptions

	debounce time.Duration
	validate bool
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [descriptor]",
		Short: "Regenerate the pom whenever the descriptor changes",
		Long: `Watch regenerates the pom each time the descriptor or the config file
changes. Rapid saves are debounced, and the pom is only rewritten when its
content changed. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, descriptorArg(args), opts)
		},
	}

	registerGenerateFlags(cmd, &opts.generateOptions)
	registerOutputFlags(cmd)

	f := cmd.Flags()
	f.DurationVar(&opts.debounce, "debounce", 300*time.Millisecond, "quiet period before regenerating")
	f.BoolVar(&opts.validate, "validate", true, "validate the pom after each generation")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, opts *watchOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	if cfg.Output == "-" {
		return &ExitError{Code: ExitCodeUsage, Err: errors.New("watch cannot write to stdout")}
	}

	files := []string{path}
	if cf := config.ConfigFileFromContext(ctx); cf != "" {
		files = append(files, cf)
	}

	watchOpts := watch.DefaultOptions()
	watchOpts.Files = files
	watchOpts.Debounce = opts.debounce
	watchOpts.Validate = opts.validate
	watchOpts.Logger = logger
	watchOpts.Out = cmd.ErrOrStderr()
	watchOpts.ValidateFn = validateWrittenPom

	runFn := func(ctx context.Context) (*watch.RunResult, error) {
		result, err := generatePom(ctx, path, &opts.generateOptions)
		if err != nil {
			return nil, err
		}

		w := output.NewFileWriter(cfg.Output, output.WithSkipUnchanged(), output.WithLogger(logger))
		if err := w.Write(result.XML); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}

		return &watch.RunResult{
			OutputPath:   w.Path(),
			Changed:      w.Changed(),
			Dependencies: result.Dependencies,
			Plugins:      result.Plugins,
			Profiles:     result.Profiles,
		}, nil
	}

	return watch.Run(ctx, watchOpts, runFn)
}

func validateWrittenPom(_ context.Context, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path produced by the writer
	if err != nil {
		return err
	}

	result := output.ValidatePom(data)
	if result.HasErrors() {
		return errors.New(output.FormatValidationResult(result))
	}

	return nil
}
