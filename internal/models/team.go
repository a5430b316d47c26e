package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is a team member's permission level
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Roles lists every valid role
var Roles = []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}

// ParseRole converts user input to a Role
func ParseRole(input string) (Role, bool) {
	in := Role(strings.ToLower(strings.TrimSpace(input)))
	for _, r := range Roles {
		if in == r {
			return r, true
		}
	}
	return "", false
}

// MemberColors is the palette assigned to new members in rotation
var MemberColors = []string{"#7C3AED", "#22C55E", "#F59E0B", "#EF4444", "#3B82F6", "#EC4899"}

// TeamMember represents a collaborator tasks can be shared with
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Color    string `json:"color"`
	IsOnline bool   `json:"isOnline"`
}

// Initials returns the first letter of the first and last name tokens
func (m TeamMember) Initials() string {
	fields := strings.Fields(m.Name)
	if len(fields) == 0 {
		return ""
	}
	initials := firstLetter(fields[0])
	if len(fields) > 1 {
		initials += firstLetter(fields[len(fields)-1])
	}
	return initials
}

func firstLetter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
