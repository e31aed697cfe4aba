package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hupe1980/pomgen/internal/config"
	"github.com/hupe1980/pomgen/internal/conventions"
)

func newConventionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conventions",
		Short: "List the available conventions",
		Long: `List the conventions that can be enabled with --conventions, the
"conventions" config key or the conventions.enabled descriptor field.
Conventions enabled by the current configuration are marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			name := color.New(color.Bold)
			if cfg.NoColor {
				name.DisableColor()
			}

			for _, n := range conventions.Names() {
				marker := " "
				if slices.ContainsFunc(cfg.Conventions, func(c string) bool {
					return strings.EqualFold(strings.TrimSpace(c), n)
				}) {
					marker = "*"
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					marker, name.Sprintf("%-18s", n), conventions.Description(n))
			}

			return nil
		},
	}
}
