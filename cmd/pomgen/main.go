// pomgen generates Maven pom.xml files from project descriptors.
package main

import (
	"os"

	"github.com/hupe1980/pomgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
