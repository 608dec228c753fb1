package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "gen-md [<directory to save files>]",
		Short:  "Generate Markdown docs for this tool",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE:   doGenDocs,
	}
}

func doGenDocs(cmd *cobra.Command, args []string) error {
	outDir := "./"
	if len(args) == 1 {
		outDir = args[0]
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Generating docs at:", outDir)

	root := cmd.Root()
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, outDir)
}
