package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/docs"
	"github.com/hupe1980/pomgen/internal/output"
)

type docsOptions struct {
	generateOptions

	format     string
	outputFile string
	title      string
	usage      bool
}

func newDocsCommand() *cobra.Command {
	opts := &docsOptions{}

	cmd := &cobra.Command{
		Use:   "docs [descriptor]",
		Short: "Generate project documentation from a descriptor",
		Long: `Docs builds the project from a descriptor, applies the enabled
conventions and writes a report listing coordinates, bills of materials,
dependencies, plugins, profiles and properties.

Output formats: markdown (default), html, asciidoc.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd, descriptorArg(args), opts)
		},
	}

	registerGenerateFlags(cmd, &opts.generateOptions)

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "markdown", "output format: markdown, html, asciidoc")
	f.StringVar(&opts.outputFile, "file", "", "write documentation to this file instead of stdout")
	f.StringVar(&opts.title, "title", "", "document title (default: project name)")
	f.BoolVar(&opts.usage, "include-usage", false, "append a dependency snippet for consumers")

	return cmd
}

func runDocs(cmd *cobra.Command, path string, opts *docsOptions) error {
	ctx := cmd.Context()

	formatter, err := docs.NewFormatter(opts.format)
	if err != nil {
		return &ExitError{Code: ExitCodeUsage, Err: err}
	}

	result, err := generatePom(ctx, path, &opts.generateOptions)
	if err != nil {
		return err
	}

	model := docs.FromBuild(result.Build)
	model.Title = opts.title
	model.IncludeUsage = opts.usage

	var buf bytes.Buffer
	if err := formatter.Format(&buf, model); err != nil {
		return &ExitError{Code: ExitCodeError, Err: fmt.Errorf("formatting docs: %w", err)}
	}

	var w output.Writer = output.NewStdoutWriter(cmd.OutOrStdout())
	if opts.outputFile != "" {
		w = output.NewFileWriter(opts.outputFile, output.WithSkipUnchanged())
	}

	if err := w.Write(buf.Bytes()); err != nil {
		return &ExitError{Code: ExitCodeWriteFailed, Err: fmt.Errorf("writing docs: %w", err)}
	}

	return nil
}
