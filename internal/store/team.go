package store

import (
	"slices"

	"github.com/google/uuid"

	"github.com/balkashynov/prodo/internal/models"
)

// AddTeamMember appends a member. Missing id, role and color are filled
// in; duplicate emails are accepted.
func (s *Store) AddTeamMember(member models.TeamMember) models.TeamMember {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}
	if member.Color == "" {
		member.Color = models.MemberColors[len(s.members)%len(models.MemberColors)]
	}

	s.members = append(s.members, member)
	s.changed(FieldTeamMembers)
	return member
}

// TeamMembers returns the roster in the order members were added
func (s *Store) TeamMembers() []models.TeamMember {
	return slices.Clone(s.members)
}

// Member looks up a member by id
func (s *Store) Member(id string) (models.TeamMember, bool) {
	i := slices.IndexFunc(s.members, func(m models.TeamMember) bool {
		return m.ID == id
	})
	if i < 0 {
		return models.TeamMember{}, false
	}
	return s.members[i], true
}

// OnlineMembers returns members currently flagged online
func (s *Store) OnlineMembers() []models.TeamMember {
	var online []models.TeamMember
	for _, m := range s.members {
		if m.IsOnline {
			online = append(online, m)
		}
	}
	return online
}
