package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/hooks"
	"github.com/raphi011/fixhook/internal/log"
)

func newFormatCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "format <path>...",
		Short:   "Run the formatter on files",
		Aliases: []string{"fmt"},
		GroupID: GroupUtility,
		Args:    cobra.MinimumNArgs(1),
		Long: `Run the configured formatter on each path, as the hook would.

Unlike run, failures are reported and make the command exit non-zero.`,
		Example: `  fixhook format src/a.ts          # Runs "just fix src/a.ts"
  fixhook format a.ts b.ts -d       # Print the commands without running them`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			f := hooks.NewFormatter(cfg.Formatter)
			f.DryRun = dryRun
			f.WorkDir = config.WorkDirFromContext(ctx)
			if f.Dir == "" {
				f.Dir = f.WorkDir
			}

			var errs []error
			for _, path := range args {
				if err := f.Format(ctx, path); err != nil {
					errs = append(errs, err)
					continue
				}
				if !dryRun {
					l.Printf("Formatted %s\n", path)
				}
			}

			if len(errs) > 0 {
				return fmt.Errorf("failed to format some files:\n%w", errors.Join(errs...))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print the formatter commands instead of running them")

	return cmd
}
