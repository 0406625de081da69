package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/hooks"
)

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Handle one after-tool-execution event from the host",
		GroupID: GroupHook,
		Args:    cobra.NoArgs,
		Long: `Handle one after-tool-execution event read as JSON from stdin.

The host runs this after every tool call. When the tool is edit, write or
patch and output.args.filePath is set, the configured formatter runs on that
file and fixhook waits for it to finish.

run always exits 0. Unknown tools, missing paths, malformed input and
formatter failures are all silently ignored.`,
		Example: `  echo '{"input":{"tool":"edit"},"output":{"args":{"filePath":"src/a.ts"}}}' | fixhook run
  echo '{"input":{"tool":"write"},"output":{"args":{"filePath":"a b.ts"}}}' | fixhook run -d`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			evt, ok := readEvent(cmd.InOrStdin())
			if !ok {
				return nil
			}

			f := hooks.NewFormatter(cfg.Formatter)
			f.DryRun = dryRun
			f.WorkDir = config.WorkDirFromContext(ctx)
			if f.Dir == "" {
				f.Dir = f.WorkDir
			}

			var reg hooks.Registry
			reg.Register(f.Hook())
			reg.Dispatch(ctx, evt.Input, evt.Output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print the formatter command instead of running it")

	return cmd
}

// readEvent decodes the host event from r. A terminal, or input that is
// empty, oversized or malformed, yields no event.
func readEvent(r io.Reader) (hooks.Event, bool) {
	if f, ok := r.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return hooks.Event{}, false
		}
	}

	evt, err := hooks.DecodeEvent(r)
	if err != nil {
		return hooks.Event{}, false
	}
	return evt, true
}
