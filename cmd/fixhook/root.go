package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/log"
	"github.com/raphi011/fixhook/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupHook    = "hook"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixhook",
	Short: "Format files after an agent edits them",
	Long: `fixhook is the post-edit formatter hook for tool-execution hosts.

Register "fixhook run" as the host's after-tool-execution hook. After every
edit, write or patch tool call it runs "just fix <path>" on the touched file.
Formatting is best effort: failures never reach the host.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return prepare(cmd, verbose, quiet)
	},
	// Run is not set - shows help when no subcommand provided
}

// prepare attaches the logger and the resolved config to cmd's context.
// run never fails here: flag conflicts resolve to quiet and a broken config
// falls back to the defaults, so the host never sees an error.
func prepare(cmd *cobra.Command, verbose, quiet bool) error {
	// Skip setup for completion and help commands
	if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
		return nil
	}
	isHook := cmd.Name() == "run"

	// Validate mutually exclusive flags
	if verbose && quiet && !isHook {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))

	cfg, err := config.Resolve(config.WorkDirFromContext(ctx))
	if err != nil {
		if !isHook {
			return err
		}
		cfg = config.Default()
	}
	ctx = config.WithConfig(ctx, &cfg)

	cmd.SetContext(ctx)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Get working directory
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixhook: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithWorkDir(ctx, workDir)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, output.Styled(os.Stdout, os.Environ()))

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'fixhook -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHook, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Hook commands
	rootCmd.AddCommand(newRunCmd())

	// Utility commands
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCheckCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
