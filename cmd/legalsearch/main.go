// Package main is the entry point for the legalsearch terminal client.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"legalsearch/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd starts the search view.
var rootCmd = &cobra.Command{
	Use:   "legalsearch",
	Short: "Ask legal questions and read cited answers in the terminal",
	Long: `legalsearch sends a natural-language legal question to a search service and
shows the synthesized answer with its supporting citations.

The service address comes from, in order of precedence: --endpoint,
LEGALSEARCH_ENDPOINT, the config file, then ` + config.DefaultEndpoint + `.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), settings(cmd))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: "+config.DefaultPath()+")")
	flags.String("endpoint", "", "search service base address")
	flags.String("log-file", "", "log file path")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("discard-stale", false, "ignore responses older than the one on screen")

	_ = viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
	_ = viper.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("discard_stale", flags.Lookup("discard-stale"))

	viper.SetEnvPrefix("LEGALSEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// settings reads the command-line and environment overrides for cmd.
// Persistent flags of the root are visible through cmd.Flags once parsed.
func settings(cmd *cobra.Command) overrides {
	cfgPath, _ := cmd.Flags().GetString("config")
	return overrides{
		configPath:   cfgPath,
		endpoint:     viper.GetString("endpoint"),
		logFile:      viper.GetString("log_file"),
		logLevel:     viper.GetString("log_level"),
		discardStale: viper.IsSet("discard_stale") && viper.GetBool("discard_stale"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
