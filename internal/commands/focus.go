package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/tui"
)

func newFocusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus [task-id]",
		Short: "Run a Pomodoro focus timer",
		Long: `Run a Pomodoro timer: a focus interval followed by a short break, repeated
until you quit. Every focus interval that runs to the end is recorded.

Examples:
  prodo focus                 # 25/5 timer from the config
  prodo focus 3f2a --minutes 50
  prodo focus --record 25     # log a session without the timer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("record") {
				minutes, _ := cmd.Flags().GetInt("record")
				if minutes <= 0 {
					return fmt.Errorf("invalid session length %d: minutes must be positive", minutes)
				}
				a.store.CompleteFocusSession(minutes, a.now())
				printCounters(cmd, a)
				return nil
			}

			opts := tui.TimerOptions{
				Focus: time.Duration(a.cfg.Focus.Minutes) * time.Minute,
				Break: time.Duration(a.cfg.Focus.BreakMinutes) * time.Minute,
			}
			if m, _ := cmd.Flags().GetInt("minutes"); m > 0 {
				opts.Focus = time.Duration(m) * time.Minute
			}
			if m, _ := cmd.Flags().GetInt("break"); m > 0 {
				opts.Break = time.Duration(m) * time.Minute
			}
			if len(args) == 1 {
				task, err := resolveTask(a.store, args[0])
				if err != nil {
					return err
				}
				opts.Task = &task
			}

			sessions, err := tui.RunTimerTUI(opts)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No focus interval finished this time.")
				return nil
			}

			total := 0
			for _, s := range sessions {
				a.store.CompleteFocusSession(s.Minutes, s.FinishedAt)
				total += s.Minutes
			}
			fmt.Fprintf(out, "🍅 Recorded %d pomodoro(s), %s of focus\n", len(sessions), formatDuration(time.Duration(total)*time.Minute))
			printCounters(cmd, a)
			return nil
		},
	}

	cmd.Flags().Int("minutes", 0, "focus interval length (default from config)")
	cmd.Flags().Int("break", 0, "break length (default from config)")
	cmd.Flags().Int("record", 0, "record a finished session of this many minutes without the timer")
	return cmd
}

func printCounters(cmd *cobra.Command, a *app) {
	c := a.store.Counters()
	fmt.Fprintf(cmd.OutOrStdout(), "🔥 Streak %d day(s) · %d pomodoros · %s focused in total\n",
		c.FocusStreak, c.CompletedPomodoros, formatDuration(time.Duration(c.TotalFocusMinutes)*time.Minute))
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
