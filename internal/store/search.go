package store

import (
	"sort"
	"strings"

	"github.com/balkashynov/prodo/internal/models"
)

// Match quality, best first
const (
	MatchExact = iota + 1
	MatchPrefix
	MatchSuffix
	MatchContains
)

// SearchResults holds ranked matches for one query
type SearchResults struct {
	Query string
	Tasks []models.Task
	Notes []models.Note
}

// Search finds tasks by title or category and notes by title, content or
// category. Matching is case insensitive; exact matches rank above
// prefix, suffix and then substring matches. Ties keep newest-first order.
func (s *Store) Search(query string) SearchResults {
	res := SearchResults{Query: query}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return res
	}

	var tasks []ranked[models.Task]
	for _, t := range s.tasks {
		if r := bestMatch(q, t.Title, t.Category); r > 0 {
			tasks = append(tasks, ranked[models.Task]{cloneTask(t), r})
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].rank < tasks[j].rank })
	for _, r := range tasks {
		res.Tasks = append(res.Tasks, r.item)
	}

	var notes []ranked[models.Note]
	for _, n := range s.notes {
		if r := bestMatch(q, n.Title, n.Content, n.Category); r > 0 {
			notes = append(notes, ranked[models.Note]{n, r})
		}
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].rank < notes[j].rank })
	for _, r := range notes {
		res.Notes = append(res.Notes, r.item)
	}

	return res
}

type ranked[T any] struct {
	item T
	rank int
}

// bestMatch returns the best match quality of q across fields, 0 for none
func bestMatch(q string, fields ...string) int {
	best := 0
	for _, f := range fields {
		if r := matchQuality(q, strings.ToLower(f)); r > 0 && (best == 0 || r < best) {
			best = r
		}
	}
	return best
}

func matchQuality(q, field string) int {
	switch {
	case field == q:
		return MatchExact
	case strings.HasPrefix(field, q):
		return MatchPrefix
	case strings.HasSuffix(field, q):
		return MatchSuffix
	case strings.Contains(field, q):
		return MatchContains
	default:
		return 0
	}
}
