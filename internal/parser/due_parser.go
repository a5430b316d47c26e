package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(h|hour|hours|d|day|days|w|week|weeks)$`)
)

// ParseDueDate parses various due date formats relative to now
// Supported formats:
// - today, tomorrow
// - dd/mm/yyyy (e.g., "15/12/2026")
// - X days (e.g., "3 days", "3days", "3d")
// - X hours (e.g., "24 hours", "4h")
// - X weeks (e.g., "2 weeks", "1w")
func ParseDueDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty due date")
	}

	switch input {
	case "today":
		return endOfDay(now, 0), nil
	case "tomorrow":
		return endOfDay(now, 1), nil
	}

	// Try dd/mm/yyyy format first
	if due, err := parseDateFormat(input, now.Location()); err == nil {
		return due, nil
	} else if dateRegex.MatchString(input) {
		return time.Time{}, err
	}

	if due, err := parseRelativeTime(input, now); err == nil {
		return due, nil
	} else if relativeRegex.MatchString(input) {
		return time.Time{}, err
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: today, tomorrow, dd/mm/yyyy, X days, X hours, or X weeks")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string, loc *time.Location) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, fmt.Errorf("year must be between 2000 and 2100")
	}

	due := time.Date(year, time.Month(month), day, 23, 59, 59, 0, loc)

	// Rejects 31/04 and 29/02 outside leap years
	if due.Day() != day || due.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return due, nil
}

// parseRelativeTime parses relative time formats like "3 days", "24h", etc.
func parseRelativeTime(input string, now time.Time) (time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "h", "hour", "hours":
		if amount < 1 || amount > 8760 { // Max 1 year in hours
			return time.Time{}, fmt.Errorf("hours must be between 1 and 8760")
		}
		return now.Add(time.Duration(amount) * time.Hour), nil

	case "d", "day", "days":
		if amount < 1 || amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 1 and 365")
		}
		return endOfDay(now, amount), nil

	case "w", "week", "weeks":
		if amount < 1 || amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be between 1 and 52")
		}
		return endOfDay(now, amount*7), nil

	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}

// endOfDay returns 23:59:59 on the day days after now
func endOfDay(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 23, 59, 59, 0, now.Location())
}

// FormatDueDate formats a due date for display relative to now
func FormatDueDate(due time.Time, now time.Time, completed bool) string {
	if due.IsZero() {
		return ""
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local := due.In(now.Location())
	dueDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	// Always show the actual date to avoid confusion
	dateStr := local.Format("02/01/2006")

	switch {
	case completed:
		return dateStr
	case due.Before(now):
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Due today (%s)", local.Format("15:04"))
	case daysDiff == 1:
		return fmt.Sprintf("📅 Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("📅 Due %s", dateStr)
	}
}
