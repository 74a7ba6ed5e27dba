package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restdeck",
	Short: "Git-friendly API request collections",
	Long: `restdeck keeps API request collections as plain YAML files in a
directory tree, so they diff, merge, and review like any other code.

A collection directory contains a _collection.yaml root metadata file,
optional _folder.yaml files per subdirectory, and one *.http.yaml or
*.grpc.yaml file per request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.restdeck.yaml)")
}

// initConfig wires viper: explicit --config wins, otherwise the home
// directory is searched, and RESTDECK_* environment variables override
// file values either way.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".restdeck")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("RESTDECK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a broken one is worth a note.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warning: cannot read config %s: %v\n", cfgFile, err)
		}
	}
}
