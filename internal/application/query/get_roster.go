package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/university"
)

// GetRosterQuery selects a course by code.
type GetRosterQuery struct {
	CourseCode string
}

// Validate checks the query parameters.
func (q GetRosterQuery) Validate() error {
	if q.CourseCode == "" {
		return shared.WrapError("roster", "Validate", shared.ErrValidation, "course_code is required", errors.New("empty course_code"))
	}
	return nil
}

// MemberDTO is one entry of a roster or a registry listing.
type MemberDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RosterDTO lists the students of a course in enrollment order.
type RosterDTO struct {
	Course   CourseDTO   `json:"course"`
	Students []MemberDTO `json:"students"`

	// Subscribers counts everyone the course still notifies, including
	// students who have dropped it.
	Subscribers int `json:"subscribers"`
}

// GetRosterHandler handles the GetRosterQuery.
type GetRosterHandler struct {
	registry *university.Registry
}

// NewGetRosterHandler creates a new GetRosterHandler. A nil registry
// means university.Default().
func NewGetRosterHandler(registry *university.Registry) *GetRosterHandler {
	if registry == nil {
		registry = university.Default()
	}
	return &GetRosterHandler{registry: registry}
}

// Handle executes the query.
func (h *GetRosterHandler) Handle(ctx context.Context, query GetRosterQuery) (*RosterDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, ok := h.registry.Course(query.CourseCode)
	if !ok {
		return nil, shared.WrapError("roster", "Get", shared.ErrNotFound, fmt.Sprintf("course %q not found", query.CourseCode), nil)
	}

	dto := &RosterDTO{
		Course:      CourseDTO{Code: c.Code, Name: c.Name, Credit: c.Credit},
		Students:    make([]MemberDTO, 0),
		Subscribers: len(c.Subscribers()),
	}
	for _, m := range c.Students() {
		p := m.Identity()
		dto.Students = append(dto.Students, MemberDTO{ID: p.ID, Name: p.Name, Email: p.Email})
	}

	return dto, nil
}
