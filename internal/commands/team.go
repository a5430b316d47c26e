package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/tui"
)

func newTeamCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage team members tasks can be shared with",
	}
	cmd.AddCommand(newTeamAddCmd(a), newTeamListCmd(a))
	return cmd
}

func newTeamAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a team member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			email, _ := cmd.Flags().GetString("email")
			online, _ := cmd.Flags().GetBool("online")

			roleFlag, _ := cmd.Flags().GetString("role")
			role, ok := models.ParseRole(roleFlag)
			if !ok {
				return fmt.Errorf("invalid role %q: use owner, admin, member, or viewer", roleFlag)
			}

			m := a.store.AddTeamMember(models.TeamMember{
				Name:     name,
				Email:    strings.TrimSpace(email),
				Role:     role,
				IsOnline: online,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "👤 Added %s (%s) as %s - ID: %s\n", m.Name, m.Initials(), m.Role, shortID(m.ID))
			return nil
		},
	}
	cmd.Flags().StringP("email", "e", "", "email address")
	cmd.Flags().StringP("role", "r", string(models.RoleMember), "role: owner|admin|member|viewer")
	cmd.Flags().Bool("online", false, "mark as online")
	return cmd
}

func newTeamListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List team members",
		Run: func(cmd *cobra.Command, args []string) {
			members := a.store.TeamMembers()
			if online, _ := cmd.Flags().GetBool("online"); online {
				members = a.store.OnlineMembers()
			}

			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, "No team members.")
				return
			}
			for _, m := range members {
				badge := lipgloss.NewStyle().
					Foreground(lipgloss.Color(m.Color)).
					Bold(true).
					Render(fmt.Sprintf("%-2s", m.Initials()))
				status := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorDisabledText)).Render("○ offline")
				if m.IsOnline {
					status = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSuccess)).Render("● online")
				}
				fmt.Fprintf(out, "%s %s %s  %s  %s  %s\n", badge, shortID(m.ID), m.Name, m.Email, m.Role, status)
			}
		},
	}
	cmd.Flags().Bool("online", false, "only online members")
	return cmd
}
