package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/doctor"
	"github.com/raphi011/fixhook/internal/output"
	"github.com/raphi011/fixhook/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check that the formatter can run",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Check that the configured formatter can run here.

The hook never reports failures, so a broken setup only shows as files that
stay unformatted. doctor checks:
- The formatter program is on PATH
- For just: a justfile exists in this directory or a parent
- For just: the configured recipe is defined`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			var d doctor.Doctor
			results := d.Run(ctx, cfg.Formatter, config.WorkDirFromContext(ctx))
			for _, r := range results {
				out.Println(resultLine(r))
			}

			if doctor.Failed(results) {
				return errors.New("formatter is not usable, files will stay unformatted")
			}
			return nil
		},
	}

	return cmd
}

func resultLine(r doctor.Result) string {
	switch r.Status {
	case doctor.StatusOK:
		return styles.OK(r.Detail)
	case doctor.StatusWarn:
		return styles.Warn(r.Detail)
	default:
		return styles.Fail(r.Detail)
	}
}
