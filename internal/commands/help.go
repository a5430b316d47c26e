package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/tui"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "help [command]",
		Short:       "Show comprehensive help for prodo",
		Long:        `Display detailed help for all prodo commands, or for one command.`,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				target, _, err := cmd.Root().Find(args)
				if err != nil {
					return err
				}
				return target.Help()
			}
			showCustomHelp(cmd.OutOrStdout())
			return nil
		},
	}
}

const logo = `
██████╗ ██████╗  ██████╗ ██████╗  ██████╗
██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██╔═══██╗
██████╔╝██████╔╝██║   ██║██║  ██║██║   ██║
██╔═══╝ ██╔══██╗██║   ██║██║  ██║██║   ██║
██║     ██║  ██║╚██████╔╝██████╔╝╚██████╔╝
╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═════╝  ╚═════╝`

func showCustomHelp(w io.Writer) {
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentMain)).Bold(true).Render(logo))
	fmt.Fprint(w, `
prodo - tasks, focus and learning from the terminal

TASKS:

  add <task>              Create a task with smart parsing
    -c, --category        Category (Work, Personal, Shopping, Health, Learning)
    -p, --priority        Priority: low|medium|high
    -q, --quadrant        Quadrant: do|schedule|delegate|eliminate
    --due                 Due date (today, tomorrow, dd/mm/yyyy, 3 days, 24 hours)
    --calendar            Add a Google Calendar reminder at the due date
    -i, --interactive     Open the form

    Smart syntax:
      @Category     Set category
      +priority     Set priority (low/medium/high)
      !quadrant     Set quadrant (do/schedule/delegate/eliminate or 1-4)
      due:3days     Set due date

    Example:
      prodo add "Prepare slides @Work +high !do due:tomorrow"

  ls                      List active tasks
    --all / --archived    Include / only archived tasks
    --overdue             Only overdue tasks
    -c, -q                Filter by category / quadrant
    --json                JSON output
    -i                    Interactive browser (d done, a archive, m move, x delete)

  matrix                  Eisenhower matrix view
  done <id>               Toggle done/todo
  archive <id>            Archive a task
  unarchive <id>          Restore an archived task
  rm <id>                 Delete a task
  edit <id>               Edit title, priority, category or due date
  move <id> <quadrant>    Move to another quadrant (resets priority)
  share <id> [member...]  Share with team members (none = unshare)
  search <query>          Search tasks and notes
  clear --force           Delete every task

NOTES & TEAM:

  note add|ls|edit|rm|clear
  team add|ls

FOCUS & PROGRESS:

  focus [task-id]         Pomodoro timer (--minutes, --break, --record)
  stats                   Analytics with a weather hint
  achievements            Achievement progress
  reset --force           Reset focus statistics

LEARNING:

  learn lessons|show|complete|tests|take|pass

SETUP:

  config init|show        Write or print the configuration
  calendar login|status   Google Calendar authorization
  version                 Print version information
  help [command]          Show this help

Task, note and member ids can be shortened to any unique prefix.

`)
}
