package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// skipStore marks commands that run without opening the store
const skipStore = "skip-store"

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command and releases everything it opened
func Execute() error {
	a := newApp()
	err := newRootCmd(a).Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prodo",
		Short: "A CLI productivity suite: tasks, focus timer, notes and learning",
		Long: `prodo keeps your tasks in an Eisenhower matrix, runs Pomodoro focus
sessions, stores notes, shares tasks with your team and tracks progress
through a small productivity course. Everything is saved locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			if cmd.Annotations[skipStore] == "true" {
				return nil
			}
			return a.openStore()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.prodo/config.yaml)")
	flags.StringVar(&a.dbPath, "db", "", "database file (overrides storage.path)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newArchiveCmd(a),
		newUnarchiveCmd(a),
		newRemoveCmd(a),
		newEditCmd(a),
		newMoveCmd(a),
		newShareCmd(a),
		newMatrixCmd(a),
		newSearchCmd(a),
		newClearCmd(a),
		newNoteCmd(a),
		newTeamCmd(a),
		newLearnCmd(a),
		newFocusCmd(a),
		newStatsCmd(a),
		newAchievementsCmd(a),
		newResetCmd(a),
		newCalendarCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipStore: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prodo %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
