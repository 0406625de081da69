package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/hooks"
	"github.com/raphi011/fixhook/internal/output"
	"github.com/raphi011/fixhook/internal/ui/styles"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [tool]...",
		Short:   "Show which tool identifiers trigger formatting",
		GroupID: GroupUtility,
		Args:    cobra.ArbitraryArgs,
		Long: `Show which host tool identifiers trigger formatting.

Matching is exact: only edit, write and patch trigger. For identifiers that
look like one of them (different case, a longer name) check says which one,
which helps spot host tools the hook silently ignores.

Without arguments, lists the trigger tools.`,
		Example: `  fixhook check                    # List trigger tools
  fixhook check edit Edit multiedit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if len(args) == 0 {
				out.Printf("Trigger tools: %s\n", strings.Join(hooks.FileMutationTools, ", "))
				return nil
			}

			for _, tool := range args {
				out.Println(checkLine(tool))
			}
			return nil
		},
	}

	return cmd
}

// checkLine describes whether tool triggers formatting.
func checkLine(tool string) string {
	if hooks.IsFileMutation(tool) {
		return styles.OK(fmt.Sprintf("%q triggers formatting", tool))
	}

	line := styles.Warn(fmt.Sprintf("%q does not trigger formatting", tool))
	if suggestions := hooks.Suggest(tool); len(suggestions) > 0 {
		quoted := make([]string, len(suggestions))
		for i, s := range suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		line += " " + styles.Hint(fmt.Sprintf("(resembles %s)", strings.Join(quoted, ", ")))
	}
	return line
}
