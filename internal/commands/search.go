package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/tui"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search tasks and notes",
		Long: `Search task titles and categories and note titles, contents and
categories. Matching ignores case; exact matches come first, then
prefix, suffix and substring matches.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			res := a.store.Search(strings.Join(args, " "))
			out := cmd.OutOrStdout()

			if len(res.Tasks) == 0 && len(res.Notes) == 0 {
				fmt.Fprintf(out, "No results for %q\n", res.Query)
				return
			}

			now := a.now()
			if len(res.Tasks) > 0 {
				fmt.Fprintf(out, "Tasks (%d)\n", len(res.Tasks))
				for _, t := range res.Tasks {
					fmt.Fprintln(out, "  "+tui.RenderTaskLine(t, shortID(t.ID), now))
				}
			}
			if len(res.Notes) > 0 {
				if len(res.Tasks) > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Notes (%d)\n", len(res.Notes))
				for _, n := range res.Notes {
					fmt.Fprintf(out, "  📝 %s %s  @%s\n", shortID(n.ID), n.Title, n.Category)
				}
			}
		},
	}
}
