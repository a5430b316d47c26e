package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
	"github.com/balkashynov/prodo/internal/tui"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `List tasks, newest first. Archived tasks are hidden unless --all or
--archived is given. Use -i for the interactive browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			archived, _ := cmd.Flags().GetBool("archived")
			overdue, _ := cmd.Flags().GetBool("overdue")
			category, _ := cmd.Flags().GetString("category")
			quadrantFlag, _ := cmd.Flags().GetString("quadrant")
			asJSON, _ := cmd.Flags().GetBool("json")
			interactive, _ := cmd.Flags().GetBool("interactive")

			if interactive {
				return tui.RunTaskBrowser(tui.NewListModel(a.store, archived, a.now))
			}

			var quadrant models.Quadrant
			if quadrantFlag != "" {
				q, ok := models.ParseQuadrant(quadrantFlag)
				if !ok {
					return fmt.Errorf("invalid quadrant %q: use do, schedule, delegate, eliminate, or 1-4", quadrantFlag)
				}
				quadrant = q
			}

			var tasks []models.Task
			switch {
			case all:
				tasks = a.store.Tasks()
			case archived:
				tasks = a.store.ArchivedTasks()
			default:
				tasks = a.store.ActiveTasks()
			}

			now := a.now()
			filtered := make([]models.Task, 0, len(tasks))
			for _, t := range tasks {
				if category != "" && t.Category != parser.NormalizeCategory(category) {
					continue
				}
				if quadrant != "" && t.Quadrant != quadrant {
					continue
				}
				if overdue && !t.IsOverdue(now) {
					continue
				}
				filtered = append(filtered, t)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			if len(filtered) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			for _, t := range filtered {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTaskLine(t, shortID(t.ID), now))
				if members := a.store.SharedMembers(t); len(members) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "      👥 %s\n", memberInitials(members))
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d task(s)\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "include archived tasks")
	cmd.Flags().Bool("archived", false, "show only archived tasks")
	cmd.Flags().Bool("overdue", false, "show only overdue tasks")
	cmd.Flags().StringP("category", "c", "", "filter by category")
	cmd.Flags().StringP("quadrant", "q", "", "filter by quadrant")
	cmd.Flags().Bool("json", false, "JSON output")
	cmd.Flags().BoolP("interactive", "i", false, "interactive browser")
	return cmd
}

func memberInitials(members []models.TeamMember) string {
	initials := make([]string, len(members))
	for i, m := range members {
		initials[i] = m.Initials()
	}
	return strings.Join(initials, " ")
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show active tasks in the Eisenhower matrix",
		Run: func(cmd *cobra.Command, args []string) {
			byQuadrant := make(map[models.Quadrant][]models.Task, len(models.Quadrants))
			for _, q := range models.Quadrants {
				byQuadrant[q] = a.store.TasksInQuadrant(q)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMatrix(byQuadrant, 100, a.now()))
		},
	}
}
