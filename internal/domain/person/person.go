// Package person holds the identity record shared by every member of
// the university: students, teachers and administrators.
package person

import (
	"fmt"
	"strings"
)

// Role is the closed set of user kinds the factory understands.
type Role string

const (
	// RoleStudent - enrolls in courses and receives grades.
	RoleStudent Role = "student"
	// RoleTeacher - teaches courses and assigns grades.
	RoleTeacher Role = "teacher"
	// RoleAuthority - administrative staff that creates courses.
	RoleAuthority Role = "authority"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAuthority:
		return true
	default:
		return false
	}
}

// String returns the role tag.
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes a role tag. Unknown tags are returned as-is and
// fail IsValid.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Person is the identity record. ID is unique within the registry of
// the person's role.
type Person struct {
	Name  string
	ID    string
	Email string
}

// New creates a Person.
func New(name, id, email string) Person {
	return Person{Name: name, ID: id, Email: email}
}

// Identity returns the record itself. Types embedding Person get it
// promoted, which is how role entities satisfy identity-based interfaces.
func (p Person) Identity() Person {
	return p
}

// DisplayInfo renders the record as one line of text.
func (p Person) DisplayInfo() string {
	return fmt.Sprintf("Name: %s, ID: %s, Email: %s", p.Name, p.ID, p.Email)
}
