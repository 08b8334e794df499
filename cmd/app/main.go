package main

import (
	"fmt"
	"os"

	"github.com/Domenick1991/flightasset/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flightasset",
	Short: "Flight lookup API with account registration",
	Long: `flightasset serves the registration, login and flight lookup HTTP API.

Run "flightasset migrate" once against a fresh database, then "flightasset serve".`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CONFIG_PATH or config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}
	return config.LoadConfig(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
