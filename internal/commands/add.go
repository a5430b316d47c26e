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

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [task description]",
		Short: "Add a new task",
		Long: `Add a new task with optional metadata.

Modes:
  Interactive: prodo add -i (or just 'prodo add' with no arguments)
  Quick: prodo add "Task title" (with optional flags)
  Smart parsing: prodo add "Buy milk @Shopping +low !schedule due:3 days"

Smart parsing syntax:
  @Category   - Category (Work, Personal, Shopping, Health, Learning or your own)
  +priority   - Priority (low/medium/high or 1/2/3)
  !quadrant   - Matrix quadrant (do/schedule/delegate/eliminate or 1-4)
  due:3days   - Due date (today, tomorrow, dd/mm/yyyy, X days, X hours, X weeks)

Without a due date the task is due in 24 hours.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")
			noUI, _ := cmd.Flags().GetBool("no-ui")
			if len(args) == 0 && !noUI {
				interactive = true
			}

			parsed := parser.ParseTitle(strings.Join(args, " "), a.now())
			if err := applyTaskFlags(cmd, &parsed, a); err != nil {
				return err
			}

			if len(parsed.Errors) > 0 {
				if noUI {
					return fmt.Errorf("could not parse task: %s", strings.Join(parsed.Errors, "; "))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
				fmt.Fprintln(cmd.OutOrStdout(), "Opening interactive mode for confirmation...")
				interactive = true
			}

			if interactive {
				form, saved, err := tui.RunTaskForm(tui.NewAddTaskModel(tui.TaskForm{
					Title:    parsed.Title,
					Category: parsed.Category,
					Priority: parsed.Priority,
					Quadrant: parsed.Quadrant,
					DueDate:  parsed.DueDate,
				}, a.now()))
				if err != nil {
					return err
				}
				if !saved {
					fmt.Fprintln(cmd.OutOrStdout(), "❌ Task creation cancelled.")
					return nil
				}
				parsed.Title, parsed.Category, parsed.Priority = form.Title, form.Category, form.Priority
				parsed.Quadrant, parsed.DueDate = form.Quadrant, form.DueDate
			}

			if strings.TrimSpace(parsed.Title) == "" {
				return fmt.Errorf("task title is required")
			}

			calendar, _ := cmd.Flags().GetBool("calendar")
			if calendar && a.reminders == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "💡 Calendar reminders are disabled. Set calendar.enabled in the config and run 'prodo calendar login'.")
			}

			task := a.store.AddTask(store.NewTask{
				Title:         parsed.Title,
				Priority:      parsed.Priority,
				Category:      parsed.Category,
				DueDate:       parsed.DueDate,
				Quadrant:      parsed.Quadrant,
				AddToCalendar: calendar,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "✅ New task %q added - ID: %s\n", task.Title, shortID(task.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "   %s · %s · @%s · %s\n",
				task.Quadrant.Title(), task.Priority, task.Category,
				parser.FormatDueDate(task.DueDate, a.now(), task.IsCompleted))
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "open the interactive form")
	cmd.Flags().Bool("no-ui", false, "never open the interactive form")
	addTaskFlags(cmd)
	cmd.Flags().Bool("calendar", false, "add a reminder to Google Calendar at the due date")
	return cmd
}

// addTaskFlags registers the metadata flags shared by add and edit
func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", "category")
	cmd.Flags().StringP("priority", "p", "", "priority: low|medium|high")
	cmd.Flags().StringP("quadrant", "q", "", "quadrant: do|schedule|delegate|eliminate")
	cmd.Flags().String("due", "", "due date (today, tomorrow, dd/mm/yyyy, 3 days, 24 hours)")
}

// applyTaskFlags lets explicit flags override what the title parser found
func applyTaskFlags(cmd *cobra.Command, parsed *parser.ParsedTask, a *app) error {
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		parsed.Category = parser.NormalizeCategory(v)
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		p, ok := models.ParsePriority(v)
		if !ok {
			return fmt.Errorf("invalid priority %q: use low, medium, high, 1, 2, or 3", v)
		}
		parsed.Priority = p
	}
	if cmd.Flags().Lookup("quadrant") != nil {
		if v, _ := cmd.Flags().GetString("quadrant"); v != "" {
			q, ok := models.ParseQuadrant(v)
			if !ok {
				return fmt.Errorf("invalid quadrant %q: use do, schedule, delegate, eliminate, or 1-4", v)
			}
			parsed.Quadrant = q
		}
	}
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		due, err := parser.ParseDueDate(v, a.now())
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", v, err)
		}
		parsed.DueDate = due
	}
	return nil
}
