package command

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// AssignCourseCommand puts a registered course on a registered teacher's list.
type AssignCourseCommand struct {
	TeacherID  string
	CourseCode string
}

// AssignCourseResult reports how many courses the teacher now has.
type AssignCourseResult struct {
	TeacherID   string
	CourseCount int
}

// AssignCourseHandler handles the AssignCourseCommand.
type AssignCourseHandler struct {
	deps Deps
}

// NewAssignCourseHandler creates a new AssignCourseHandler.
func NewAssignCourseHandler(deps Deps) *AssignCourseHandler {
	return &AssignCourseHandler{deps: deps.withDefaults("assign_course")}
}

// Handle executes the assign course command. Assigning the same course
// twice lists it twice.
func (h *AssignCourseHandler) Handle(ctx context.Context, cmd AssignCourseCommand) (*AssignCourseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := h.deps.findTeacher("AssignCourse", cmd.TeacherID)
	if err != nil {
		return nil, err
	}
	c, err := h.deps.findCourse("AssignCourse", cmd.CourseCode)
	if err != nil {
		return nil, err
	}

	t.AssignCourse(c)
	h.deps.Logger.Debug("course assigned", logger.TeacherID(t.ID), logger.CourseCode(c.Code))
	h.deps.publish(shared.NewCourseAssignedEvent(t.ID, c.Code))

	return &AssignCourseResult{TeacherID: t.ID, CourseCount: len(t.Courses())}, nil
}
