package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/parser"
	"github.com/balkashynov/prodo/internal/store"
)

// maxMatrixRows caps how many tasks a quadrant box lists
const maxMatrixRows = 6

// RenderMatrix draws the Eisenhower matrix as a 2x2 grid of boxes.
// byQuadrant holds the active tasks of each quadrant.
func RenderMatrix(byQuadrant map[models.Quadrant][]models.Task, width int, now time.Time) string {
	boxWidth := max(width/2-2, 28)

	boxes := make([]string, len(models.Quadrants))
	for i, q := range models.Quadrants {
		boxes[i] = renderQuadrant(q, byQuadrant[q], boxWidth, now)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], " ", boxes[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, boxes[2], " ", boxes[3])

	axis := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("         urgent ←→ not urgent  ·  important ↑↓ not important")

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, axis)
}

func renderQuadrant(q models.Quadrant, tasks []models.Task, width int, now time.Time) string {
	color := QuadrantColor(q)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).
		Render(fmt.Sprintf("%s (%d)", q.Title(), len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("nothing here"))
	}

	for i, t := range tasks {
		if i == maxMatrixRows {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).
				Render(fmt.Sprintf("… %d more", len(tasks)-maxMatrixRows)))
			break
		}

		mark := "○"
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		switch {
		case t.IsCompleted:
			mark = "✓"
			style = style.Foreground(lipgloss.Color(ColorDisabledText)).Strikethrough(true)
		case t.IsOverdue(now):
			mark = "!"
			style = style.Foreground(lipgloss.Color(ColorError))
		}

		title := t.Title
		if r := []rune(title); len(r) > width-8 {
			title = string(r[:width-11]) + "..."
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, style.Render(title)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		Width(width).
		Height(maxMatrixRows + 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

// RenderTaskLine formats a task for the plain list output
func RenderTaskLine(t models.Task, shortID string, now time.Time) string {
	mark := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("○")
	if t.IsCompleted {
		mark = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓")
	}
	icon, _ := PriorityBadge(t.Priority)

	id := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render(shortID)
	quadrant := lipgloss.NewStyle().Foreground(lipgloss.Color(QuadrantColor(t.Quadrant))).Render(t.Quadrant.Title())
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("@%s  %s", t.Category, parser.FormatDueDate(t.DueDate, now, t.IsCompleted)))

	return fmt.Sprintf("%s %s %s %s  [%s]  %s", mark, id, icon, t.Title, quadrant, meta)
}

// RenderStats draws the analytics card. weather may be nil.
func RenderStats(st store.Stats, weather *models.WeatherSnapshot, hint string) string {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(20)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	section := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	row := func(name, v string) string {
		return label.Render(name) + value.Render(v) + "\n"
	}

	var b strings.Builder
	b.WriteString(section.Render("📊 Productivity") + "\n")
	b.WriteString(label.Render("Score") + bar.ViewAs(st.ProductivityScore) +
		value.Render(fmt.Sprintf(" %d/100", int(st.ProductivityScore*100))) + "\n")
	b.WriteString(label.Render("Completion") + bar.ViewAs(st.CompletionRate) + "\n")
	b.WriteString(label.Render("Course progress") + bar.ViewAs(st.CourseProgress) + "\n\n")

	b.WriteString(section.Render("✅ Tasks") + "\n")
	b.WriteString(row("Total", fmt.Sprint(st.TotalTasks)))
	b.WriteString(row("Completed", fmt.Sprint(st.CompletedTasks)))
	b.WriteString(row("Active", fmt.Sprint(st.ActiveTasks)))
	b.WriteString(row("Archived", fmt.Sprint(st.ArchivedTasks)))
	overdue := fmt.Sprint(st.OverdueTasks)
	if st.OverdueTasks > 0 {
		overdue = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(overdue)
	}
	b.WriteString(label.Render("Overdue") + overdue + "\n\n")

	b.WriteString(section.Render("🍅 Focus") + "\n")
	b.WriteString(row("Pomodoros", fmt.Sprint(st.Counters.CompletedPomodoros)))
	b.WriteString(row("Streak", fmt.Sprintf("%d day(s)", st.Counters.FocusStreak)))
	b.WriteString(row("Focus time", formatMinutes(st.Counters.TotalFocusMinutes)))
	b.WriteString("\n")

	b.WriteString(section.Render("🎓 Learning") + "\n")
	b.WriteString(row("Lessons", fmt.Sprintf("%d/%d", st.CompletedLessons, st.TotalLessons)))
	b.WriteString(row("Tests passed", fmt.Sprintf("%d/%d", st.PassedTests, st.TotalTests)))

	if len(st.ByCategory) > 0 {
		b.WriteString("\n" + section.Render("📁 Active by category") + "\n")
		categories := make([]string, 0, len(st.ByCategory))
		for c := range st.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			b.WriteString(row(c, fmt.Sprint(st.ByCategory[c])))
		}
	}

	if weather != nil {
		b.WriteString("\n" + section.Render(weather.Icon+" Weather") + "\n")
		w := fmt.Sprintf("%s, %.0f°C, %d%% humidity, wind %.0f km/h",
			weather.Condition, weather.Temperature, weather.Humidity, weather.WindSpeed)
		if weather.Mock {
			w += " (sample)"
		}
		b.WriteString(value.Render(w) + "\n")
		if hint != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render(hint) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

// RenderAchievements lists achievements with a progress bar each
func RenderAchievements(achievements []store.Achievement) string {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 20

	unlocked := 0
	var b strings.Builder
	for _, a := range achievements {
		title := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		icon := "🔒"
		if a.Unlocked {
			unlocked++
			title = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
			icon = a.Icon
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			icon,
			title.Width(16).Render(a.Title),
			bar.ViewAs(a.Progress),
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(a.Description)))
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).
		Render(fmt.Sprintf("🏅 Achievements %d/%d", unlocked, len(achievements)))
	return header + "\n\n" + strings.TrimRight(b.String(), "\n")
}

func formatMinutes(total int) string {
	d := time.Duration(total) * time.Minute
	if d >= time.Hour {
		return fmt.Sprintf("%dh %02dm", int(d.Hours()), total%60)
	}
	return fmt.Sprintf("%dm", total)
}
