package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done [task-id]",
		Short: "Toggle a task between done and todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}
			a.store.ToggleTask(task.ID)

			if task.IsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "↩️  Marked task %s back to todo: %s\n", shortID(task.ID), task.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Marked task %s as done: %s\n", shortID(task.ID), task.Title)
			}
			return nil
		},
	}
}

func newArchiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "archive [task-id]",
		Short: "Archive a task",
		Long:  `Hide a task from the active views. Archived tasks still count in statistics.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}
			if task.IsArchived {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s is already archived\n", shortID(task.ID))
				return nil
			}
			a.store.ArchiveTask(task.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "🗄  Archived task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func newUnarchiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive [task-id]",
		Short: "Restore an archived task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}
			if !task.IsArchived {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s is not archived\n", shortID(task.ID))
				return nil
			}
			a.store.UnarchiveTask(task.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "📤 Restored task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [task-id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(a.store, args[0])
			if err != nil {
				return err
			}
			a.store.DeleteTask(task.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Deleted task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return fmt.Errorf("this deletes all %d tasks; re-run with --force", len(a.store.Tasks()))
			}
			a.store.ClearAllTasks()
			fmt.Fprintln(cmd.OutOrStdout(), "🧹 All tasks deleted")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "confirm deletion")
	return cmd
}
