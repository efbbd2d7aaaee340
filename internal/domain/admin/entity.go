// Package admin contains the administrator entity, the staff member who
// creates courses.
package admin

import (
	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/person"
)

// Administrator creates courses but does not own or register them.
type Administrator struct {
	person.Person
}

// New creates an administrator.
func New(p person.Person) *Administrator {
	return &Administrator{Person: p}
}

// Role implements the user contract.
func (a *Administrator) Role() person.Role {
	return person.RoleAuthority
}

// CreateCourse builds a new course. Registering it is up to the caller.
func (a *Administrator) CreateCourse(code, name string, credit int) *course.Course {
	return course.New(code, name, credit)
}
