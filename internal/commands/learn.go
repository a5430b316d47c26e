package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/store"
)

func newLearnCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Work through the productivity course",
		Long: `Lessons unlock one after another; each test unlocks once its lesson
is completed. Lessons and tests can be referred to by id or by number.`,
	}
	cmd.AddCommand(
		newLearnLessonsCmd(a),
		newLearnShowCmd(a),
		newLearnCompleteCmd(a),
		newLearnTestsCmd(a),
		newLearnTakeCmd(a),
		newLearnPassCmd(a),
	)
	return cmd
}

// findLesson accepts a lesson id or its position in the course
func findLesson(s *store.Store, ref string) (models.Lesson, error) {
	if l, ok := s.Lesson(ref); ok {
		return l, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		for _, l := range s.Lessons() {
			if l.Order == n {
				return l, nil
			}
		}
	}
	return models.Lesson{}, fmt.Errorf("%w: no lesson %q", ErrNoMatch, ref)
}

// findTest accepts a test id or its 1-based position
func findTest(s *store.Store, ref string) (models.CourseTest, error) {
	if t, ok := s.Test(ref); ok {
		return t, nil
	}
	tests := s.Tests()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(tests) {
		return tests[n-1], nil
	}
	return models.CourseTest{}, fmt.Errorf("%w: no test %q", ErrNoMatch, ref)
}

func newLearnLessonsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List lessons and their status",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, l := range a.store.Lessons() {
				status := "🔒"
				switch {
				case a.store.IsLessonCompleted(l.ID):
					status = "✅"
				case a.store.IsLessonUnlocked(l):
					status = "📖"
				}
				fmt.Fprintf(out, "%s %d. %s %s  (%s, %d min)  %s\n",
					status, l.Order, l.Icon, l.Title, l.Difficulty, l.DurationMinutes, l.ID)
			}
			fmt.Fprintf(out, "\nCourse progress: %.0f%%\n", a.store.CourseProgress()*100)
		},
	}
}

func newLearnShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [lesson]",
		Short: "Read a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := findLesson(a.store, args[0])
			if err != nil {
				return err
			}
			if !a.store.IsLessonUnlocked(l) {
				return fmt.Errorf("lesson %q is locked; complete %q first", l.ID, l.RequiredLessonID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n%s\n\n", l.Icon, l.Title, l.Description)
			for i, page := range l.Content {
				fmt.Fprintf(out, "%d. %s\n", i+1, page)
			}
			if !a.store.IsLessonCompleted(l.ID) {
				fmt.Fprintf(out, "\nDone reading? Run 'prodo learn complete %s'\n", l.ID)
			}
			return nil
		},
	}
}

func newLearnCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [lesson]",
		Short: "Mark a lesson as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := findLesson(a.store, args[0])
			if err != nil {
				return err
			}
			if !a.store.IsLessonUnlocked(l) {
				return fmt.Errorf("lesson %q is locked; complete %q first", l.ID, l.RequiredLessonID)
			}
			if a.store.IsLessonCompleted(l.ID) {
				fmt.Fprintf(cmd.OutOrStdout(), "Lesson %q was already completed\n", l.Title)
				return nil
			}

			a.store.CompleteLesson(l.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "🎓 Completed lesson %q (course %.0f%% done)\n", l.Title, a.store.CourseProgress()*100)
			return nil
		},
	}
}

func newLearnTestsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "List tests and best scores",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, t := range a.store.Tests() {
				status := "🔒 locked"
				switch {
				case a.store.IsTestPassed(t.ID):
					status = "✅ passed"
				case a.store.IsTestUnlocked(t):
					status = "📝 open"
				}
				best := "-"
				if score, ok := a.store.BestScore(t.ID); ok {
					best = fmt.Sprintf("%d%%", score)
				}
				fmt.Fprintf(out, "%d. %s  %s  best %s, pass at %d%%  (%d questions)  %s\n",
					i+1, t.Title, status, best, t.PassingScore, len(t.Questions), t.ID)
			}
		},
	}
}

func newLearnTakeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "take [test]",
		Short: "Take a test, answering on standard input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := findTest(a.store, args[0])
			if err != nil {
				return err
			}
			if !a.store.IsTestUnlocked(t) {
				return fmt.Errorf("test %q is locked; complete %q first", t.ID, t.RequiredLessonID)
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			answers := make([]int, len(t.Questions))

			fmt.Fprintf(out, "📝 %s (%d questions, pass at %d%%)\n", t.Title, len(t.Questions), t.PassingScore)
			for i, q := range t.Questions {
				fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					fmt.Fprintf(out, "   %d) %s\n", j+1, opt)
				}
				fmt.Fprint(out, "> ")

				answers[i] = -1
				if scanner.Scan() {
					if n, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil {
						answers[i] = n - 1
					}
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}

			result, _ := a.store.SubmitTest(t.ID, answers)
			fmt.Fprintln(out)
			if result.Passed {
				fmt.Fprintf(out, "🎉 Passed with %d%%\n", result.Score)
			} else {
				fmt.Fprintf(out, "❌ Scored %d%%, %d%% needed. Try again!\n", result.Score, t.PassingScore)
			}
			return nil
		},
	}
}

func newLearnPassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pass [test] [score]",
		Short: "Record a test result directly",
		Long:  `Record a score (0-100) for a test taken elsewhere. The best score is kept.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := findTest(a.store, args[0])
			if err != nil {
				return err
			}
			if !a.store.IsTestUnlocked(t) {
				return fmt.Errorf("test %q is locked; complete %q first", t.ID, t.RequiredLessonID)
			}
			score, err := strconv.Atoi(args[1])
			if err != nil || score < 0 || score > 100 {
				return fmt.Errorf("invalid score %q: use a number from 0 to 100", args[1])
			}

			a.store.PassTest(t.ID, score)
			best, _ := a.store.BestScore(t.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Recorded %d%% for %q (best %d%%)\n", score, t.Title, best)
			return nil
		},
	}
}
