// Package command contains write operations (CQRS - Commands) on the
// university records.
package command

import (
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/student"
	"github.com/alem-hub/university-records/internal/domain/teacher"
	"github.com/alem-hub/university-records/internal/domain/university"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SHARED HANDLER PLUMBING
// ══════════════════════════════════════════════════════════════════════════════

// Outcome tells whether a command changed anything.
type Outcome string

const (
	// OutcomeApplied - the mutation happened and its event was published.
	OutcomeApplied Outcome = "applied"
	// OutcomeRefused - a soft failure: nothing changed, Message says why.
	OutcomeRefused Outcome = "refused"
)

// Deps are the collaborators every handler needs. A nil Registry means
// university.Default(), so handlers built from the same zero Deps share
// one registry.
type Deps struct {
	Registry  *university.Registry
	Publisher shared.EventPublisher
	Logger    *logger.Logger
}

func (d Deps) withDefaults(operation string) Deps {
	if d.Registry == nil {
		d.Registry = university.Default()
	}
	if d.Publisher == nil {
		d.Publisher = shared.NopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	d.Logger = d.Logger.With(logger.Component("command"), logger.Operation(operation))
	return d
}

// publish sends event and logs, rather than returns, a failure: the
// mutation has already happened by the time events go out.
func (d Deps) publish(event shared.Event) {
	if err := d.Publisher.Publish(event); err != nil {
		d.Logger.Error("failed to publish event",
			logger.EventType(string(event.EventType())),
			logger.Err(err),
		)
	}
}

// refuse logs a soft failure at info level and builds its message.
func (d Deps) refuse(err error, fields ...logger.Field) string {
	msg := shared.Message(err)
	d.Logger.Info(msg, fields...)
	return msg
}

func (d Deps) findStudent(op, id string) (*student.Student, error) {
	s, ok := d.Registry.Student(id)
	if !ok {
		return nil, shared.WrapError("student", op, shared.ErrNotFound, fmt.Sprintf("student %q not found", id), nil)
	}
	return s, nil
}

func (d Deps) findTeacher(op, id string) (*teacher.Teacher, error) {
	t, ok := d.Registry.Teacher(id)
	if !ok {
		return nil, shared.WrapError("teacher", op, shared.ErrNotFound, fmt.Sprintf("teacher %q not found", id), nil)
	}
	return t, nil
}

func (d Deps) findCourse(op, code string) (*course.Course, error) {
	c, ok := d.Registry.Course(code)
	if !ok {
		return nil, shared.WrapError("course", op, shared.ErrNotFound, fmt.Sprintf("course %q not found", code), nil)
	}
	return c, nil
}
