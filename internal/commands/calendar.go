package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/calendar"
)

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar reminders for tasks",
	}
	cmd.AddCommand(newCalendarLoginCmd(a), newCalendarStatusCmd(a))
	return cmd
}

func newCalendarLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize prodo to add events to your calendar",
		Long: `Authorize with Google. Download an OAuth client (Desktop app) from the
Google Cloud console and save it as credentials.json in the credentials
directory (default ~/.config/prodo) first.`,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := calendar.NewAuth(a.credentialsDir(), a.logger.Named("calendar"))
			if err := auth.Login(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Token saved to %s\n", auth.TokenPath())
			if !a.cfg.Calendar.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "💡 Set calendar.enabled: true in the config to add reminders with 'prodo add --calendar'.")
			}
			return nil
		},
	}
}

func newCalendarStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "status",
		Short:       "Check calendar authorization",
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := calendar.NewAuth(a.credentialsDir(), a.logger.Named("calendar"))
			granted, err := calendar.NewGoogle(auth, a.cfg.Calendar.Name, a.logger.Named("calendar")).RequestAccess(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !granted:
				fmt.Fprintln(out, "🔒 Not authorized. Run 'prodo calendar login'.")
			case !a.cfg.Calendar.Enabled:
				fmt.Fprintln(out, "✅ Authorized, but reminders are disabled in the config.")
			default:
				fmt.Fprintf(out, "✅ Authorized. Reminders go to the %q calendar.\n", a.cfg.Calendar.Name)
			}
			return nil
		},
	}
}
