package command

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Enrolls a registered student in a registered course. The course
// notifies its whole roster.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data to enroll a student.
type EnrollStudentCommand struct {
	StudentID  string
	CourseCode string
}

// EnrollmentResult is shared by enroll and drop.
type EnrollmentResult struct {
	Outcome    Outcome
	Message    string
	StudentID  string
	CourseCode string
	RosterSize int
}

// EnrollStudentHandler handles the EnrollStudentCommand.
type EnrollStudentHandler struct {
	deps Deps
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(deps Deps) *EnrollStudentHandler {
	return &EnrollStudentHandler{deps: deps.withDefaults("enroll_student")}
}

// Handle executes the enroll student command. Double enrollment is
// refused, not failed: the result carries OutcomeRefused and a nil error.
func (h *EnrollStudentHandler) Handle(ctx context.Context, cmd EnrollStudentCommand) (*EnrollmentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := h.deps.findStudent("Enroll", cmd.StudentID)
	if err != nil {
		return nil, err
	}
	c, err := h.deps.findCourse("Enroll", cmd.CourseCode)
	if err != nil {
		return nil, err
	}

	result := &EnrollmentResult{StudentID: s.ID, CourseCode: c.Code}

	if err := s.AddCourse(c); err != nil {
		if !shared.IsSoftFailure(err) {
			return nil, err
		}
		result.Outcome = OutcomeRefused
		result.Message = h.deps.refuse(err, logger.StudentID(s.ID), logger.CourseCode(c.Code))
		result.RosterSize = len(c.Students())
		return result, nil
	}

	result.Outcome = OutcomeApplied
	result.RosterSize = len(c.Students())
	h.deps.Logger.Debug("student enrolled", logger.StudentID(s.ID), logger.CourseCode(c.Code))
	h.deps.publish(shared.NewStudentEnrolledEvent(s.ID, c.Code, result.RosterSize))

	return result, nil
}
