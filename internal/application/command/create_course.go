package command

import (
	"context"
	"errors"

	"github.com/alem-hub/university-records/internal/domain/admin"
	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COURSE COMMAND
// An administrator creates the course, then the registry records it.
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseCommand contains the data to create and register a course.
type CreateCourseCommand struct {
	Administrator *admin.Administrator
	Code          string
	Name          string
	Credit        int
}

// Validate validates the command.
func (c CreateCourseCommand) Validate() error {
	if c.Administrator == nil {
		return shared.WrapError("create_course", "Validate", shared.ErrValidation, "administrator is required", errors.New("nil administrator"))
	}
	return nil
}

// CreateCourseResult contains the registered course.
type CreateCourseResult struct {
	Course *course.Course

	// Replaced is true when a course with the same code was already
	// registered and has been superseded.
	Replaced bool
}

// CreateCourseHandler handles the CreateCourseCommand.
type CreateCourseHandler struct {
	deps Deps
}

// NewCreateCourseHandler creates a new CreateCourseHandler.
func NewCreateCourseHandler(deps Deps) *CreateCourseHandler {
	return &CreateCourseHandler{deps: deps.withDefaults("create_course")}
}

// Handle executes the create course command.
func (h *CreateCourseHandler) Handle(ctx context.Context, cmd CreateCourseCommand) (*CreateCourseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	_, replaced := h.deps.Registry.Course(cmd.Code)
	c := cmd.Administrator.CreateCourse(cmd.Code, cmd.Name, cmd.Credit)
	h.deps.Registry.AddCourse(c)

	if replaced {
		h.deps.Logger.Warn("course code already registered, replacing", logger.CourseCode(cmd.Code))
	}

	h.deps.publish(shared.NewCourseRegisteredEvent(c.Code, c.Name, c.Credit, cmd.Administrator.ID))

	return &CreateCourseResult{Course: c, Replaced: replaced}, nil
}
