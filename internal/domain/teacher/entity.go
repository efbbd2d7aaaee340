// Package teacher contains the teacher entity.
package teacher

import (
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/student"
)

// Teacher is a person who teaches courses and grades students.
type Teacher struct {
	person.Person

	courses []*course.Course
}

// New creates a teacher with no courses.
func New(p person.Person) *Teacher {
	return &Teacher{Person: p}
}

// Role implements the user contract.
func (t *Teacher) Role() person.Role {
	return person.RoleTeacher
}

// AssignCourse adds c to the courses taught. The same course may be
// assigned more than once.
func (t *Teacher) AssignCourse(c *course.Course) {
	t.courses = append(t.courses, c)
}

// Courses returns the assigned courses in assignment order.
func (t *Teacher) Courses() []*course.Course {
	out := make([]*course.Course, len(t.courses))
	copy(out, t.courses)
	return out
}

// AssignGrade records grade for s under courseCode and notifies s.
//
// Only the code is checked against the student's enrolled courses. It is
// not checked that the teacher teaches the course or that grade is in
// any particular range. Returns shared.ErrNotEnrolled, leaving the
// grades untouched, when courseCode is not enrolled.
func (t *Teacher) AssignGrade(s *student.Student, courseCode string, grade float64) error {
	if !s.IsEnrolled(courseCode) {
		return shared.ErrNotEnrolled
	}
	s.SetGrade(courseCode, grade)
	s.Update(fmt.Sprintf("Grade %s assigned for %s", gpa.Format(grade), courseCode))
	return nil
}
