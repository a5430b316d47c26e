package store

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/models"
)

// AddNote creates a note at the head of the list
func (s *Store) AddNote(title, content, category string) models.Note {
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: s.now(),
	}
	s.notes = slices.Insert(s.notes, 0, note)
	s.changed(FieldNotes)
	return note
}

// UpdateNote overwrites title, content and category
func (s *Store) UpdateNote(id, title, content, category string) bool {
	i := s.indexOfNote(id)
	if i < 0 {
		s.logger.Debug("update ignored, note not found", zap.String("id", id))
		return false
	}
	s.notes[i].Title = title
	s.notes[i].Content = content
	s.notes[i].Category = category
	s.changed(FieldNotes)
	return true
}

// DeleteNote removes the note
func (s *Store) DeleteNote(id string) bool {
	i := s.indexOfNote(id)
	if i < 0 {
		s.logger.Debug("delete ignored, note not found", zap.String("id", id))
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.changed(FieldNotes)
	return true
}

// ClearAllNotes empties the note list
func (s *Store) ClearAllNotes() {
	s.notes = []models.Note{}
	s.changed(FieldNotes)
}

// Notes returns every note, newest first
func (s *Store) Notes() []models.Note {
	return slices.Clone(s.notes)
}

// Note looks up a note by id
func (s *Store) Note(id string) (models.Note, bool) {
	i := s.indexOfNote(id)
	if i < 0 {
		return models.Note{}, false
	}
	return s.notes[i], true
}

func (s *Store) indexOfNote(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool {
		return n.ID == id
	})
}
