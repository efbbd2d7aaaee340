// Package user builds role-specific entities from a role tag.
package user

import (
	"fmt"
	"io"

	"github.com/alem-hub/university-records/internal/domain/admin"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/student"
	"github.com/alem-hub/university-records/internal/domain/teacher"
)

// User is what every role entity has in common.
type User interface {
	Identity() person.Person
	Role() person.Role
	DisplayInfo() string
}

var (
	_ User = (*student.Student)(nil)
	_ User = (*teacher.Teacher)(nil)
	_ User = (*admin.Administrator)(nil)
)

// Factory creates users. The zero value is usable: students get the
// regular GPA strategy and no notification writer.
type Factory struct {
	// Strategy is handed to every new student.
	Strategy gpa.Strategy

	// Notifications, when set, receives the printed notifications of
	// every new student.
	Notifications io.Writer
}

// NewFactory creates a Factory with the given student defaults.
func NewFactory(strategy gpa.Strategy, notifications io.Writer) *Factory {
	return &Factory{Strategy: strategy, Notifications: notifications}
}

// Create builds the entity for role. Unknown roles return an error
// matching shared.ErrInvalidRole.
func (f *Factory) Create(role person.Role, name, id, email string) (User, error) {
	p := person.New(name, id, email)

	switch role {
	case person.RoleStudent:
		opts := []student.Option{student.WithStrategy(f.strategy())}
		if f.Notifications != nil {
			opts = append(opts, student.WithNotificationWriter(f.Notifications))
		}
		return student.New(p, opts...), nil
	case person.RoleTeacher:
		return teacher.New(p), nil
	case person.RoleAuthority:
		return admin.New(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidRole, string(role))
	}
}

func (f *Factory) strategy() gpa.Strategy {
	if f.Strategy == nil {
		return gpa.Default()
	}
	return f.Strategy
}
