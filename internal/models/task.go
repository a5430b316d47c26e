package models

import (
	"strings"
	"time"
)

// Priority is the urgency tier of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts user input to a Priority.
// Accepts "low/medium/med/high" or "1/2/3".
func ParsePriority(input string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "low", "1":
		return PriorityLow, true
	case "medium", "med", "2":
		return PriorityMedium, true
	case "high", "3":
		return PriorityHigh, true
	default:
		return "", false
	}
}

// Rank orders priorities for sorting (high first)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Quadrant is one of the four Eisenhower matrix buckets
type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "urgentImportant"
	QuadrantNotUrgentImportant    Quadrant = "notUrgentImportant"
	QuadrantUrgentNotImportant    Quadrant = "urgentNotImportant"
	QuadrantNotUrgentNotImportant Quadrant = "notUrgentNotImportant"
)

// Quadrants lists the matrix buckets in display order
var Quadrants = []Quadrant{
	QuadrantUrgentImportant,
	QuadrantNotUrgentImportant,
	QuadrantUrgentNotImportant,
	QuadrantNotUrgentNotImportant,
}

// DefaultPriority is the priority a task takes when moved into the quadrant
func (q Quadrant) DefaultPriority() Priority {
	switch q {
	case QuadrantUrgentImportant:
		return PriorityHigh
	case QuadrantNotUrgentNotImportant:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Title returns the short action label shown in the matrix
func (q Quadrant) Title() string {
	switch q {
	case QuadrantUrgentImportant:
		return "Do First"
	case QuadrantNotUrgentImportant:
		return "Schedule"
	case QuadrantUrgentNotImportant:
		return "Delegate"
	case QuadrantNotUrgentNotImportant:
		return "Eliminate"
	default:
		return string(q)
	}
}

// ParseQuadrant accepts the stored name, the action alias (do, schedule,
// delegate, eliminate) or the matrix position 1-4.
func ParseQuadrant(input string) (Quadrant, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, q := range Quadrants {
		if in == strings.ToLower(string(q)) {
			return q, true
		}
	}
	switch in {
	case "do", "do first", "1":
		return QuadrantUrgentImportant, true
	case "schedule", "2":
		return QuadrantNotUrgentImportant, true
	case "delegate", "3":
		return QuadrantUrgentNotImportant, true
	case "eliminate", "4":
		return QuadrantNotUrgentNotImportant, true
	}
	return "", false
}

// DefaultCategory is used when a task is added without one
const DefaultCategory = "Work"

// Categories are the ones offered by the add form
var Categories = []string{"Work", "Personal", "Shopping", "Health", "Learning"}

// Task represents a todo item
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	IsArchived  bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
	Quadrant    Quadrant  `json:"quadrant"`

	// Team member ids; entries may point at members that no longer exist
	SharedWith []string `json:"sharedWith"`
}

// IsOverdue reports whether the due date has passed on an open task
func (t Task) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && t.DueDate.Before(now)
}
