// Package presenter renders university records as plain console text.
// Every function returns the full block, one line per entry, each line
// terminated by a newline.
package presenter

import (
	"fmt"
	"strings"

	"github.com/alem-hub/university-records/internal/application/query"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
)

// ══════════════════════════════════════════════════════════════════════════════
// PEOPLE
// ══════════════════════════════════════════════════════════════════════════════

// PersonInfo renders "Name: X, ID: Y, Email: Z".
func PersonInfo(p person.Person) string {
	return p.DisplayInfo() + "\n"
}

// StudentCourses lists the courses a student is enrolled in.
func StudentCourses(t *query.TranscriptDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s's Courses:\n", t.Name)
	for _, c := range t.Courses {
		fmt.Fprintf(&sb, "- %s\n", c.Name)
	}
	return sb.String()
}

// StudentGrades lists recorded grades under the code each was assigned for.
func StudentGrades(t *query.TranscriptDTO) string {
	var sb strings.Builder
	sb.WriteString("Grades:\n")
	for _, g := range t.Grades {
		fmt.Fprintf(&sb, "%s: %s\n", g.CourseCode, gpa.Format(g.Value))
	}
	return sb.String()
}

// GPA renders the transcript's GPA.
func GPA(t *query.TranscriptDTO) string {
	return "GPA: " + gpa.Format(t.GPA) + "\n"
}

// TeacherCourses lists what a teacher teaches.
func TeacherCourses(t query.TeacherDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s teaches:\n", t.Name)
	for _, c := range t.Courses {
		fmt.Fprintf(&sb, "- %s\n", c.Name)
	}
	return sb.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSES
// ══════════════════════════════════════════════════════════════════════════════

// CourseRoster lists the students enrolled in a course.
func CourseRoster(r *query.RosterDTO) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Students in %s:\n", r.Course.Name)
	for _, s := range r.Students {
		fmt.Fprintf(&sb, "- %s\n", s.Name)
	}
	return sb.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRY
// ══════════════════════════════════════════════════════════════════════════════

// RegistryStudents renders the student listing.
func RegistryStudents(r *query.RegistryDTO) string {
	var sb strings.Builder
	sb.WriteString("Students:\n")
	for _, s := range r.Students {
		fmt.Fprintf(&sb, "- %s (%s)\n", s.Name, s.ID)
	}
	return sb.String()
}

// RegistryTeachers renders the teacher listing.
func RegistryTeachers(r *query.RegistryDTO) string {
	var sb strings.Builder
	sb.WriteString("Teachers:\n")
	for _, t := range r.Teachers {
		fmt.Fprintf(&sb, "- %s (%s)\n", t.Name, t.ID)
	}
	return sb.String()
}

// RegistryCourses renders the course listing.
func RegistryCourses(r *query.RegistryDTO) string {
	var sb strings.Builder
	sb.WriteString("Courses:\n")
	for _, c := range r.Courses {
		fmt.Fprintf(&sb, "- %s (%s)\n", c.Name, c.Code)
	}
	return sb.String()
}
