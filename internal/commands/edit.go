package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
	"github.com/balkashynov/prodo/internal/store"
	"github.com/balkashynov/prodo/internal/tui"
)

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Edit an existing task",
		Long: `Edit the title, priority, category or due date of a task. Fields without
a flag keep their value. Without flags the interactive form opens.
Use 'prodo move' to change the quadrant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}

			edit := store.TaskEdit{
				Title:    task.Title,
				Priority: task.Priority,
				Category: task.Category,
				DueDate:  task.DueDate,
			}

			interactive, _ := cmd.Flags().GetBool("interactive")
			if !interactive && !anyFlagChanged(cmd, "title", "priority", "category", "due") {
				interactive = true
			}

			if interactive {
				form, saved, err := tui.RunTaskForm(tui.NewEditTaskModel(task, a.now()))
				if err != nil {
					return err
				}
				if !saved {
					fmt.Fprintln(cmd.OutOrStdout(), "❌ Edit cancelled.")
					return nil
				}
				edit.Title = form.Title
				if form.Priority != "" {
					edit.Priority = form.Priority
				}
				if form.Category != "" {
					edit.Category = form.Category
				}
				if !form.DueDate.IsZero() {
					edit.DueDate = form.DueDate
				}
				if form.Quadrant != "" && form.Quadrant != task.Quadrant {
					a.store.UpdateTaskQuadrant(task.ID, form.Quadrant)
				}
			} else {
				if v, _ := cmd.Flags().GetString("title"); strings.TrimSpace(v) != "" {
					edit.Title = strings.TrimSpace(v)
				}
				parsed := parser.ParsedTask{}
				if err := applyTaskFlags(cmd, &parsed, a); err != nil {
					return err
				}
				if parsed.Priority != "" {
					edit.Priority = parsed.Priority
				}
				if parsed.Category != "" {
					edit.Category = parsed.Category
				}
				if !parsed.DueDate.IsZero() {
					edit.DueDate = parsed.DueDate
				}
			}

			a.store.UpdateTask(task.ID, edit)
			fmt.Fprintf(cmd.OutOrStdout(), "✏️  Updated task %s: %s\n", shortID(task.ID), edit.Title)
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "open the interactive form")
	cmd.Flags().StringP("title", "t", "", "new title")
	cmd.Flags().StringP("category", "c", "", "category")
	cmd.Flags().StringP("priority", "p", "", "priority: low|medium|high")
	cmd.Flags().String("due", "", "due date (today, tomorrow, dd/mm/yyyy, 3 days, 24 hours)")
	return cmd
}

func anyFlagChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move [task-id] [quadrant]",
		Short: "Move a task to another matrix quadrant",
		Long: `Move a task to do, schedule, delegate or eliminate (or 1-4).
The task's priority resets to the quadrant default.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}
			q, ok := models.ParseQuadrant(args[1])
			if !ok {
				return fmt.Errorf("invalid quadrant %q: use do, schedule, delegate, eliminate, or 1-4", args[1])
			}

			a.store.UpdateTaskQuadrant(task.ID, q)
			fmt.Fprintf(cmd.OutOrStdout(), "🧭 Moved task %s to %s (priority %s)\n", shortID(task.ID), q.Title(), q.DefaultPriority())
			return nil
		},
	}
}

func newShareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share [task-id] [member...]",
		Short: "Share a task with team members",
		Long: `Replace the task's share list with the given members (id prefix or
email). With no members the task is unshared.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(args)-1)
			names := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				m, err := resolveMember(a.store, ref)
				if err != nil {
					return err
				}
				ids = append(ids, m.ID)
				names = append(names, m.Name)
			}

			a.store.ShareTask(task.ID, ids)
			if len(ids) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "🔒 Task %s is no longer shared\n", shortID(task.ID))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "👥 Shared task %s with %s\n", shortID(task.ID), strings.Join(names, ", "))
			return nil
		},
	}
}
