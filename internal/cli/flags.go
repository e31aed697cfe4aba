package cli

import (
	"github.com/spf13/cobra"
)

// DefaultDescriptor is read when no descriptor argument is given.
const DefaultDescriptor = "pomgen.yaml"

// generateOptions holds the flags shared by generate, diff and watch.
type generateOptions struct {
	javaVersion string
	encoding    string
}

// registerGenerateFlags adds the generation flags to a cobra command. The
// conventions, platform-version and indent flags are read back through the
// config so the config file and POMGEN_ environment variables apply too.
func registerGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	f := cmd.Flags()
	f.StringSlice("conventions", nil, "conventions to apply: defaults, integration-tests, docker")
	f.String("platform-version", "", "Spring Boot version used when the descriptor sets none")
	f.String("indent", "tab", `indentation: "tab" or a number of spaces`)
	f.StringVar(&opts.javaVersion, "java-version", "", "java.version used when the descriptor sets none")
	f.StringVar(&opts.encoding, "encoding", "", "source encoding written by the defaults convention")
}

// registerOutputFlags adds the output file flag.
func registerOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "pom.xml", `output file, "-" for stdout`)
}

// descriptorArg returns the descriptor path from args or the default.
func descriptorArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return DefaultDescriptor
}
