package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/log"
	"github.com/raphi011/fixhook/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the global config file with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

// shownConfig is the effective config as printed by "config show".
type shownConfig struct {
	Formatter shownFormatter `toml:"formatter"`
}

type shownFormatter struct {
	Command []string `toml:"command"`
	Timeout string   `toml:"timeout,omitempty"`
	Dir     string   `toml:"dir,omitempty"`
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration for the current directory:
the global config with .fixhook.toml merged on top.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			shown := shownConfig{Formatter: shownFormatter{
				Command: cfg.Formatter.Command,
				Dir:     cfg.Formatter.Dir,
			}}
			if cfg.Formatter.Timeout > 0 {
				shown.Formatter.Timeout = cfg.Formatter.Timeout.String()
			}

			if err := toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(shown); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the global config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}

	return cmd
}
