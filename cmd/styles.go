package cmd

import (
	"strings"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ApexioDaCoder/progresser/spinner"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the spinner styles",
		Args:  cobra.NoArgs,
		Run:   doStyles,
	}
}

func doStyles(cmd *cobra.Command, args []string) {
	logrus.Debug("Listing spinner styles")

	t := tabby.NewCustom(tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0))
	t.AddHeader("NAME", "INTERVAL", "FRAMES")
	for _, name := range spinner.Styles() {
		style, _ := spinner.Lookup(name)
		t.AddLine(name, style.Interval, strings.Join(style.Frames, " "))
	}
	t.Print()
}
