package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/balkashynov/prodo/internal/models"
	"github.com/balkashynov/prodo/internal/store"
)

// shortIDLen is how much of an id the listings show
const shortIDLen = 8

var (
	ErrNoMatch   = errors.New("no match")
	ErrAmbiguous = errors.New("ambiguous id")
)

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// resolve finds the item whose id equals ref or, failing that, the single
// item whose id starts with ref
func resolve[T any](kind, ref string, items []T, id func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, fmt.Errorf("%s id is required", kind)
	}

	var matches []T
	for _, item := range items {
		if id(item) == ref {
			return item, nil
		}
		if strings.HasPrefix(id(item), ref) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%w: no %s with id %q", ErrNoMatch, kind, ref)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%w: %q matches %d %ss, type more characters", ErrAmbiguous, ref, len(matches), kind)
	}
}

func resolveTask(s *store.Store, ref string) (models.Task, error) {
	return resolve("task", ref, s.Tasks(), func(t models.Task) string { return t.ID })
}

func resolveNote(s *store.Store, ref string) (models.Note, error) {
	return resolve("note", ref, s.Notes(), func(n models.Note) string { return n.ID })
}

// resolveMember accepts a member id prefix or an email address
func resolveMember(s *store.Store, ref string) (models.TeamMember, error) {
	members := s.TeamMembers()
	for _, m := range members {
		if m.Email != "" && strings.EqualFold(m.Email, ref) {
			return m, nil
		}
	}
	return resolve("member", ref, members, func(m models.TeamMember) string { return m.ID })
}
