package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
)

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	cmd.AddCommand(
		newNoteAddCmd(a),
		newNoteListCmd(a),
		newNoteEditCmd(a),
		newNoteRemoveCmd(a),
		newNoteClearCmd(a),
	)
	return cmd
}

func newNoteAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("note title is required")
			}
			content, _ := cmd.Flags().GetString("content")
			category, _ := cmd.Flags().GetString("category")

			note := a.store.AddNote(title, content, parser.NormalizeCategory(category))
			fmt.Fprintf(cmd.OutOrStdout(), "📝 New note %q added - ID: %s\n", note.Title, shortID(note.ID))
			return nil
		},
	}
	cmd.Flags().StringP("content", "m", "", "note body")
	cmd.Flags().StringP("category", "c", models.DefaultCategory, "category")
	return cmd
}

func newNoteListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			notes := a.store.Notes()
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notes yet.")
				return
			}
			for _, n := range notes {
				fmt.Fprintf(out, "📝 %s %s  @%s  %s\n", shortID(n.ID), n.Title, n.Category, n.CreatedAt.Format("02/01/2006"))
				if n.Content != "" {
					fmt.Fprintf(out, "   %s\n", n.Content)
				}
			}
		},
	}
}

func newNoteEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [note-id]",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := resolveNote(a.store, args[0])
			if err != nil {
				return err
			}
			if !anyFlagChanged(cmd, "title", "content", "category") {
				return fmt.Errorf("nothing to change: pass --title, --content or --category")
			}

			title, content, category := note.Title, note.Content, note.Category
			if cmd.Flags().Changed("title") {
				title, _ = cmd.Flags().GetString("title")
			}
			if cmd.Flags().Changed("content") {
				content, _ = cmd.Flags().GetString("content")
			}
			if cmd.Flags().Changed("category") {
				v, _ := cmd.Flags().GetString("category")
				category = parser.NormalizeCategory(v)
			}

			a.store.UpdateNote(note.ID, title, content, category)
			fmt.Fprintf(cmd.OutOrStdout(), "✏️  Updated note %s: %s\n", shortID(note.ID), title)
			return nil
		},
	}
	cmd.Flags().StringP("title", "t", "", "new title")
	cmd.Flags().StringP("content", "m", "", "new body")
	cmd.Flags().StringP("category", "c", "", "new category")
	return cmd
}

func newNoteRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [note-id]",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := resolveNote(a.store, args[0])
			if err != nil {
				return err
			}
			a.store.DeleteNote(note.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Deleted note %s: %s\n", shortID(note.ID), note.Title)
			return nil
		},
	}
}

func newNoteClearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every note",
		RunE: func(cmd *cobra.Command, args []string) error {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return fmt.Errorf("this deletes all %d notes; re-run with --force", len(a.store.Notes()))
			}
			a.store.ClearAllNotes()
			fmt.Fprintln(cmd.OutOrStdout(), "🧹 All notes deleted")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "confirm deletion")
	return cmd
}
