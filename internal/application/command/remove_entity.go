package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/shared"
)

// EntityKind selects which registry mapping a removal targets.
type EntityKind string

const (
	KindStudent EntityKind = "student"
	KindTeacher EntityKind = "teacher"
	KindCourse  EntityKind = "course"
)

// RemoveEntityCommand removes one registry entry by ID or code.
type RemoveEntityCommand struct {
	Kind EntityKind
	Key  string
}

// Validate validates the command.
func (c RemoveEntityCommand) Validate() error {
	switch c.Kind {
	case KindStudent, KindTeacher, KindCourse:
	default:
		return shared.WrapError("remove_entity", "Validate", shared.ErrValidation,
			"unknown entity kind", fmt.Errorf("%w: %q", shared.ErrInvalidInput, string(c.Kind)))
	}
	return nil
}

// RemoveEntityResult reports whether anything was removed.
type RemoveEntityResult struct {
	Removed bool
}

// RemoveEntityHandler handles the RemoveEntityCommand.
type RemoveEntityHandler struct {
	deps Deps
}

// NewRemoveEntityHandler creates a new RemoveEntityHandler.
func NewRemoveEntityHandler(deps Deps) *RemoveEntityHandler {
	return &RemoveEntityHandler{deps: deps.withDefaults("remove_entity")}
}

// Handle executes the remove command. Removing an unknown key is a no-op
// that publishes nothing. Nothing cascades: rosters and enrollments keep
// their references.
func (h *RemoveEntityHandler) Handle(ctx context.Context, cmd RemoveEntityCommand) (*RemoveEntityResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r := h.deps.Registry
	var found bool
	switch cmd.Kind {
	case KindStudent:
		_, found = r.Student(cmd.Key)
		r.RemoveStudent(cmd.Key)
	case KindTeacher:
		_, found = r.Teacher(cmd.Key)
		r.RemoveTeacher(cmd.Key)
	case KindCourse:
		_, found = r.Course(cmd.Key)
		r.RemoveCourse(cmd.Key)
	}

	if found {
		h.deps.publish(shared.NewEntityRemovedEvent(string(cmd.Kind), cmd.Key))
	}

	return &RemoveEntityResult{Removed: found}, nil
}
