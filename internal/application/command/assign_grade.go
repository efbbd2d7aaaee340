package command

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGN GRADE COMMAND
// A teacher grades a student under a course code. The code is taken as
// given and only checked against the student's enrollment keys, so it
// need not name a registered course.
// ══════════════════════════════════════════════════════════════════════════════

// AssignGradeCommand contains the data to record a grade.
type AssignGradeCommand struct {
	TeacherID  string
	StudentID  string
	CourseCode string
	Grade      float64
}

// AssignGradeResult reports what happened and the student's GPA after it.
type AssignGradeResult struct {
	Outcome Outcome
	Message string
	GPA     float64
}

// AssignGradeHandler handles the AssignGradeCommand.
type AssignGradeHandler struct {
	deps Deps
}

// NewAssignGradeHandler creates a new AssignGradeHandler.
func NewAssignGradeHandler(deps Deps) *AssignGradeHandler {
	return &AssignGradeHandler{deps: deps.withDefaults("assign_grade")}
}

// Handle executes the assign grade command. Grading an unenrolled code
// is refused with a nil error.
func (h *AssignGradeHandler) Handle(ctx context.Context, cmd AssignGradeCommand) (*AssignGradeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := h.deps.findTeacher("AssignGrade", cmd.TeacherID)
	if err != nil {
		return nil, err
	}
	s, err := h.deps.findStudent("AssignGrade", cmd.StudentID)
	if err != nil {
		return nil, err
	}

	if err := t.AssignGrade(s, cmd.CourseCode, cmd.Grade); err != nil {
		if !shared.IsSoftFailure(err) {
			return nil, err
		}
		msg := h.deps.refuse(err,
			logger.TeacherID(t.ID),
			logger.StudentID(s.ID),
			logger.CourseCode(cmd.CourseCode),
		)
		return &AssignGradeResult{Outcome: OutcomeRefused, Message: msg, GPA: s.CalculateGPA()}, nil
	}

	h.deps.Logger.Debug("grade assigned",
		logger.TeacherID(t.ID),
		logger.StudentID(s.ID),
		logger.CourseCode(cmd.CourseCode),
		logger.Grade(cmd.Grade),
	)
	h.deps.publish(shared.NewGradeAssignedEvent(s.ID, t.ID, cmd.CourseCode, cmd.Grade))

	return &AssignGradeResult{Outcome: OutcomeApplied, GPA: s.CalculateGPA()}, nil
}
