package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Commit string

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information of this tool.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Commit)
		},
	}
}
