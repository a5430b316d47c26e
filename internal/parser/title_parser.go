package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/prodo/internal/models"
)

var (
	categoryRegex = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9_-]+)`)
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+([A-Za-z0-9]+)`)
	quadrantRegex = regexp.MustCompile(`(?:^|\s)!([A-Za-z0-9]+)`)
	dueRegex      = regexp.MustCompile(`(?i)(?:^|\s)due:(\d+\s+(?:hours?|days?|weeks?)\b|\S+)`)
)

// ParsedTask represents a task parsed from natural language. Empty fields
// were not given and take the store defaults.
type ParsedTask struct {
	Title    string
	Category string
	Priority models.Priority
	Quadrant models.Quadrant
	DueDate  time.Time
	Errors   []string
}

// ParseTitle extracts metadata from a task title using natural syntax
// Syntax: "Task title @Category +priority !quadrant due:3days"
func ParseTitle(input string, now time.Time) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	// Due date first so "due:3 days" is not split into title words
	if m := dueRegex.FindStringSubmatch(input); len(m) > 1 {
		due, err := ParseDueDate(m[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	// Extract category (@Category)
	if m := categoryRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Category = NormalizeCategory(m[1])
		input = categoryRegex.ReplaceAllString(input, " ")
	}

	// Extract priority (+high, +3, +med, etc.)
	if m := priorityRegex.FindStringSubmatch(input); len(m) > 1 {
		if p, ok := models.ParsePriority(m[1]); ok {
			result.Priority = p
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+m[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Extract quadrant (!do, !schedule, !2, !urgentImportant, etc.)
	if m := quadrantRegex.FindStringSubmatch(input); len(m) > 1 {
		if q, ok := models.ParseQuadrant(m[1]); ok {
			result.Quadrant = q
		} else {
			result.Errors = append(result.Errors, "Invalid quadrant '"+m[1]+"'. Use: do, schedule, delegate, eliminate, or 1-4")
		}
		input = quadrantRegex.ReplaceAllString(input, " ")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}

// NormalizeCategory maps a category to the known spelling, matched case
// insensitively; unknown categories are kept as typed
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	for _, known := range models.Categories {
		if strings.EqualFold(category, known) {
			return known
		}
	}
	return category
}
