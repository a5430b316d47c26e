package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/store"
	"github.com/balkashynov/prodo/internal/tui"
	"github.com/balkashynov/prodo/internal/weather"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show productivity analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The lookup runs while the stats are computed
			if a.weather != nil {
				a.weather.Refresh(cmd.Context(), a.store)
			}

			st := a.store.Stats(a.now())

			var snap *models.WeatherSnapshot
			hint := ""
			if a.weather != nil {
				a.weather.Wait()
				if w, ok := a.store.Weather(); ok {
					snap = &w
					hint = weather.Hint(w)
				}
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Stats   store.Stats             `json:"stats"`
					Weather *models.WeatherSnapshot `json:"weather,omitempty"`
				}{st, snap})
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStats(st, snap, hint))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "JSON output")
	return cmd
}

func newAchievementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements and progress towards them",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderAchievements(a.store.Achievements()))
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset focus statistics and the achievements derived from them",
		Long: `Zero the pomodoro count, focus streak and total focus time. Tasks, notes
and course progress are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return fmt.Errorf("this resets all focus statistics; re-run with --force")
			}
			a.store.ResetStatistics()
			fmt.Fprintln(cmd.OutOrStdout(), "🔄 Statistics reset")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "confirm reset")
	return cmd
}
