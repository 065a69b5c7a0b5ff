// Command docgen generates CLI reference documentation from the uikit command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/uikit/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "uikit",
		Usage:     "Snackbar sequencing and table utilities",
		UsageText: "uikit [global options] command [command options]",
		Flags:     commands.GlobalFlags(flags),
	}
	root, _ = commands.RegisterAll(root, flags)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
