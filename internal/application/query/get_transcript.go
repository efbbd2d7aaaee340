// Package query contains read operations (CQRS - Queries) on the
// university records.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/university"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TRANSCRIPT QUERY
// Collects what a student is enrolled in, the grades on record and the
// GPA those grades produce.
// ══════════════════════════════════════════════════════════════════════════════

// GetTranscriptQuery selects a student by ID.
type GetTranscriptQuery struct {
	StudentID string
}

// Validate checks the query parameters.
func (q GetTranscriptQuery) Validate() error {
	if q.StudentID == "" {
		return shared.WrapError("transcript", "Validate", shared.ErrValidation, "student_id is required", errors.New("empty student_id"))
	}
	return nil
}

// CourseDTO describes one course.
type CourseDTO struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Credit int    `json:"credit"`
}

// GradeDTO is one recorded grade. CourseCode is the key the grade was
// assigned under, which need not name a registered course.
type GradeDTO struct {
	CourseCode string  `json:"course_code"`
	Value      float64 `json:"value"`
}

// TranscriptDTO is a student's academic record.
type TranscriptDTO struct {
	StudentID string      `json:"student_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Courses   []CourseDTO `json:"courses"`
	Grades    []GradeDTO  `json:"grades"`
	GPA       float64     `json:"gpa"`
}

// GetTranscriptHandler handles the GetTranscriptQuery.
type GetTranscriptHandler struct {
	registry *university.Registry
}

// NewGetTranscriptHandler creates a new GetTranscriptHandler. A nil registry
// means university.Default().
func NewGetTranscriptHandler(registry *university.Registry) *GetTranscriptHandler {
	if registry == nil {
		registry = university.Default()
	}
	return &GetTranscriptHandler{registry: registry}
}

// Handle executes the query.
func (h *GetTranscriptHandler) Handle(ctx context.Context, query GetTranscriptQuery) (*TranscriptDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, ok := h.registry.Student(query.StudentID)
	if !ok {
		return nil, shared.WrapError("transcript", "Get", shared.ErrNotFound, fmt.Sprintf("student %q not found", query.StudentID), nil)
	}

	dto := &TranscriptDTO{
		StudentID: s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Courses:   make([]CourseDTO, 0),
		Grades:    make([]GradeDTO, 0),
		GPA:       s.CalculateGPA(),
	}
	for _, c := range s.Courses() {
		dto.Courses = append(dto.Courses, CourseDTO{Code: c.Code, Name: c.Name, Credit: c.Credit})
	}
	for _, g := range s.Grades() {
		dto.Grades = append(dto.Grades, GradeDTO{CourseCode: g.CourseCode, Value: g.Value})
	}

	return dto, nil
}
