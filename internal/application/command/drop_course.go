package command

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// DropCourseCommand removes a student's enrollment under a course code.
type DropCourseCommand struct {
	StudentID  string
	CourseCode string
}

// DropCourseHandler handles the DropCourseCommand.
type DropCourseHandler struct {
	deps Deps
}

// NewDropCourseHandler creates a new DropCourseHandler.
func NewDropCourseHandler(deps Deps) *DropCourseHandler {
	return &DropCourseHandler{deps: deps.withDefaults("drop_course")}
}

// Handle executes the drop course command. The course is looked up
// through the student's own enrollments, so a course no longer in the
// registry can still be dropped.
func (h *DropCourseHandler) Handle(ctx context.Context, cmd DropCourseCommand) (*EnrollmentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := h.deps.findStudent("Drop", cmd.StudentID)
	if err != nil {
		return nil, err
	}

	result := &EnrollmentResult{StudentID: s.ID, CourseCode: cmd.CourseCode}
	c, enrolled := s.Course(cmd.CourseCode)

	if err := s.DropCourse(cmd.CourseCode); err != nil {
		if !shared.IsSoftFailure(err) {
			return nil, err
		}
		result.Outcome = OutcomeRefused
		result.Message = h.deps.refuse(err, logger.StudentID(s.ID), logger.CourseCode(cmd.CourseCode))
		return result, nil
	}

	result.Outcome = OutcomeApplied
	if enrolled {
		result.RosterSize = len(c.Students())
	}
	h.deps.Logger.Debug("student dropped", logger.StudentID(s.ID), logger.CourseCode(cmd.CourseCode))
	h.deps.publish(shared.NewStudentDroppedEvent(s.ID, cmd.CourseCode, result.RosterSize))

	return result, nil
}
