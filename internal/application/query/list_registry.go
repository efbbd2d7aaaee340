package query

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/university"
)

// ListRegistryQuery has no parameters: the registry is listed whole.
type ListRegistryQuery struct{}

// TeacherDTO is a teacher and the courses assigned to them, duplicates
// included.
type TeacherDTO struct {
	MemberDTO
	Courses []CourseDTO `json:"courses"`
}

// RegistryDTO holds the three registry listings in insertion order.
type RegistryDTO struct {
	Students []MemberDTO  `json:"students"`
	Teachers []TeacherDTO `json:"teachers"`
	Courses  []CourseDTO  `json:"courses"`
}

// ListRegistryHandler handles the ListRegistryQuery.
type ListRegistryHandler struct {
	registry *university.Registry
}

// NewListRegistryHandler creates a new ListRegistryHandler. A nil registry
// means university.Default().
func NewListRegistryHandler(registry *university.Registry) *ListRegistryHandler {
	if registry == nil {
		registry = university.Default()
	}
	return &ListRegistryHandler{registry: registry}
}

// Handle executes the query.
func (h *ListRegistryHandler) Handle(ctx context.Context, _ ListRegistryQuery) (*RegistryDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dto := &RegistryDTO{
		Students: make([]MemberDTO, 0),
		Teachers: make([]TeacherDTO, 0),
		Courses:  make([]CourseDTO, 0),
	}
	for _, s := range h.registry.Students() {
		dto.Students = append(dto.Students, MemberDTO{ID: s.ID, Name: s.Name, Email: s.Email})
	}
	for _, t := range h.registry.Teachers() {
		td := TeacherDTO{
			MemberDTO: MemberDTO{ID: t.ID, Name: t.Name, Email: t.Email},
			Courses:   make([]CourseDTO, 0),
		}
		for _, c := range t.Courses() {
			td.Courses = append(td.Courses, CourseDTO{Code: c.Code, Name: c.Name, Credit: c.Credit})
		}
		dto.Teachers = append(dto.Teachers, td)
	}
	for _, c := range h.registry.Courses() {
		dto.Courses = append(dto.Courses, CourseDTO{Code: c.Code, Name: c.Name, Credit: c.Credit})
	}

	return dto, nil
}
