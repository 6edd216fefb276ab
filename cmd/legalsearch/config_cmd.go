package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"legalsearch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		o := settings(cmd)
		force, _ := cmd.Flags().GetBool("force")

		svc := config.NewConfigService(o.configPath)
		if _, err := os.Stat(svc.Path()); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		}

		cfg := config.DefaultConfig()
		if o.endpoint != "" {
			cfg.Endpoint = o.endpoint
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := svc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(settings(cmd), nil)
		if err != nil {
			return err
		}
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "encoding config")
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
