package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/prodo/internal/models"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedTask
	}{
		{
			name:  "plain title",
			input: "Write report",
			want:  ParsedTask{Title: "Write report", Errors: []string{}},
		},
		{
			name:  "all metadata",
			input: "Buy milk @shopping +low !schedule due:3days",
			want: ParsedTask{
				Title:    "Buy milk",
				Category: "Shopping",
				Priority: models.PriorityLow,
				Quadrant: models.QuadrantNotUrgentImportant,
				DueDate:  time.Date(2026, 3, 17, 23, 59, 59, 0, time.UTC),
				Errors:   []string{},
			},
		},
		{
			name:  "spaced relative due date",
			input: "Plan offsite due:2 weeks @Work",
			want: ParsedTask{
				Title:    "Plan offsite",
				Category: "Work",
				DueDate:  time.Date(2026, 3, 28, 23, 59, 59, 0, time.UTC),
				Errors:   []string{},
			},
		},
		{
			name:  "unknown category kept as typed",
			input: "Fix bike @Garage",
			want:  ParsedTask{Title: "Fix bike", Category: "Garage", Errors: []string{}},
		},
		{
			name:  "email address is not a category",
			input: "Email bob@example.com",
			want:  ParsedTask{Title: "Email bob@example.com", Errors: []string{}},
		},
		{
			name:  "numeric quadrant and priority",
			input: "Sort photos !4 +2",
			want: ParsedTask{
				Title:    "Sort photos",
				Priority: models.PriorityMedium,
				Quadrant: models.QuadrantNotUrgentNotImportant,
				Errors:   []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTitle(tt.input, now))
		})
	}
}

func TestParseTitleCollectsErrors(t *testing.T) {
	got := ParseTitle("Thing +urgent !someday due:never", now)

	assert.Equal(t, "Thing", got.Title)
	assert.Len(t, got.Errors, 3)
	assert.Empty(t, got.Priority)
	assert.Empty(t, got.Quadrant)
	assert.True(t, got.DueDate.IsZero())
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)},
		{"Tomorrow", time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)},
		{"15/12/2026", time.Date(2026, 12, 15, 23, 59, 59, 0, time.UTC)},
		{"3 days", time.Date(2026, 3, 17, 23, 59, 59, 0, time.UTC)},
		{"1d", time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)},
		{"4h", now.Add(4 * time.Hour)},
		{"24 hours", now.Add(24 * time.Hour)},
		{"1 week", time.Date(2026, 3, 21, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDueDateRejects(t *testing.T) {
	for _, input := range []string{"", "soon", "31/04/2026", "29/02/2027", "1/13/2026", "0 days", "400 days", "53 weeks"} {
		_, err := ParseDueDate(input, now)
		assert.Error(t, err, input)
	}
}

func TestFormatDueDate(t *testing.T) {
	assert.Empty(t, FormatDueDate(time.Time{}, now, false))
	assert.Contains(t, FormatDueDate(now.Add(-time.Hour), now, false), "OVERDUE")
	assert.Equal(t, "14/03/2026", FormatDueDate(now.Add(-time.Hour), now, true))
	assert.Contains(t, FormatDueDate(now.Add(2*time.Hour), now, false), "Due today")
	assert.Contains(t, FormatDueDate(now.Add(24*time.Hour), now, false), "Due tomorrow")
	assert.Contains(t, FormatDueDate(now.Add(72*time.Hour), now, false), "in 3 days")
	assert.Equal(t, "📅 Due 14/04/2026", FormatDueDate(now.AddDate(0, 1, 0), now, false))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Health", NormalizeCategory("HEALTH"))
	assert.Equal(t, "Side project", NormalizeCategory(" Side project "))
}
