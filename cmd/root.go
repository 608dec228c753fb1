package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "progresser",
		Short: "Draw a single line progress bar in the terminal",

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/progresser.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print verbose logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStylesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newDocsCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}
}

func getConfigDir() string {
	config, err := homedir.Expand("~/.config")
	DieNotNil(err, "unable to find home directory")
	if _, err := os.Stat(config); os.IsNotExist(err) {
		DieNotNil(os.Mkdir(config, 0755), "unable to create config dir")
	}
	return config
}

// configPath is the profile read by viper and written by "config init".
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(getConfigDir(), "progresser.yaml")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(getConfigDir())
		viper.SetConfigName("progresser")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PROGRESSER")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Debug("Config file not found")
		} else if !os.IsNotExist(err) {
			fmt.Println("ERROR: ", err)
			os.Exit(1)
		}
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func DieNotNil(err error, message ...string) {
	if err != nil {
		parts := []interface{}{"ERROR:"}
		for _, p := range message {
			parts = append(parts, p)
		}
		parts = append(parts, err)
		fmt.Println(parts...)
		os.Exit(1)
	}
}
