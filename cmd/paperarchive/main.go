// Package main is the entry point for the paperarchive CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/engine"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperarchive CLI.
var rootCmd = &cobra.Command{
	Use:   "paperarchive",
	Short: "Browse and serve a daily research-paper archive",
	Long: `paperarchive reads the JSON artifacts produced by the archive pipeline
(index.json and search_index.json) and presents them: full-text search with
date and author filters, ranked date-grouped listings, day navigation, and
parsed daily overviews.

Subcommands cover interactive use (search, dates, overview, paper) and
serving the archive to MCP clients (serve).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperarchive.yaml or ~/.config/paperarchive/config.yaml)")
	rootCmd.PersistentFlags().String("data", "data", "directory holding index.json and search_index.json")
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperarchive")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperarchive"))
		}
	}

	viper.SetEnvPrefix("PAPERARCHIVE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadEngine loads the snapshot from the configured data directory and
// builds an engine over it.
func loadEngine() (*engine.Engine, error) {
	dir := viper.GetString("data")
	snap, err := corpus.LoadSnapshot(dir)
	if err != nil {
		return nil, fmt.Errorf("loading archive from %s: %w", dir, err)
	}
	return engine.New(snap, engine.Options{})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
