package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ApexioDaCoder/progresser/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the bar profile",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default profile to the config file",
		Args:  cobra.NoArgs,
		RunE:  doConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the profile stored in the config file",
		Args:  cobra.NoArgs,
		RunE:  doConfigShow,
	})
	return cmd
}

func doConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	logrus.Debugf("Writing default profile to %s", path)

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	return nil
}

func doConfigShow(cmd *cobra.Command, args []string) error {
	path := configPath()
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
	return nil
}
