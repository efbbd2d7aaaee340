// Package student contains the student entity: enrollment, grades and
// the notification inbox.
package student

import (
	"fmt"
	"io"

	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Grade is a grade recorded under a course code.
type Grade struct {
	CourseCode string
	Value      float64
}

// Notification is a message delivered to a student.
type Notification struct {
	Recipient string
	Message   string
}

// String renders the notification the way it is printed.
func (n Notification) String() string {
	return fmt.Sprintf("[Notification - %s]: %s", n.Recipient, n.Message)
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Student is a person who enrolls in courses. Enrolled courses and grades
// are both keyed by course code and keep insertion order.
type Student struct {
	person.Person

	courses     map[string]*course.Course
	courseOrder []string

	grades     map[string]float64
	gradeOrder []string

	strategy gpa.Strategy
	inbox    []Notification
	out      io.Writer
}

// Option configures a Student.
type Option func(*Student)

// WithStrategy sets the GPA strategy.
func WithStrategy(s gpa.Strategy) Option {
	return func(st *Student) {
		if s != nil {
			st.strategy = s
		}
	}
}

// WithNotificationWriter prints every notification to w as it arrives.
func WithNotificationWriter(w io.Writer) Option {
	return func(st *Student) {
		st.out = w
	}
}

// New creates a student. Without WithStrategy the regular average is used.
func New(p person.Person, opts ...Option) *Student {
	s := &Student{
		Person:   p,
		courses:  make(map[string]*course.Course),
		grades:   make(map[string]float64),
		strategy: gpa.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Role implements the user contract.
func (s *Student) Role() person.Role {
	return person.RoleStudent
}

// ══════════════════════════════════════════════════════════════════════════════
// ENROLLMENT
// ══════════════════════════════════════════════════════════════════════════════

// AddCourse enrolls the student in c and puts the student on c's roster.
// Returns shared.ErrAlreadyEnrolled, leaving everything unchanged, when
// c.Code is already among the enrolled courses.
func (s *Student) AddCourse(c *course.Course) error {
	if _, ok := s.courses[c.Code]; ok {
		return shared.ErrAlreadyEnrolled
	}
	s.courses[c.Code] = c
	s.courseOrder = append(s.courseOrder, c.Code)
	c.AddStudent(s)
	return nil
}

// DropCourse removes the enrollment under code and takes the student
// off that course's roster. Returns shared.ErrCourseNotFound when the
// code is not enrolled.
func (s *Student) DropCourse(code string) error {
	c, ok := s.courses[code]
	if !ok {
		return shared.ErrCourseNotFound
	}
	delete(s.courses, code)
	s.courseOrder = removeKey(s.courseOrder, code)
	c.RemoveStudent(s)
	return nil
}

// IsEnrolled reports whether code is a key of the enrolled courses.
func (s *Student) IsEnrolled(code string) bool {
	_, ok := s.courses[code]
	return ok
}

// Course returns the course enrolled under code.
func (s *Student) Course(code string) (*course.Course, bool) {
	c, ok := s.courses[code]
	return c, ok
}

// Courses returns the enrolled courses in enrollment order.
func (s *Student) Courses() []*course.Course {
	out := make([]*course.Course, 0, len(s.courseOrder))
	for _, code := range s.courseOrder {
		out = append(out, s.courses[code])
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// GRADES
// ══════════════════════════════════════════════════════════════════════════════

// SetGrade records value under code, replacing any previous grade.
// Callers are responsible for checking enrollment first.
func (s *Student) SetGrade(code string, value float64) {
	if _, ok := s.grades[code]; !ok {
		s.gradeOrder = append(s.gradeOrder, code)
	}
	s.grades[code] = value
}

// Grade returns the grade recorded under code.
func (s *Student) Grade(code string) (float64, bool) {
	g, ok := s.grades[code]
	return g, ok
}

// Grades returns the recorded grades in the order they were first assigned.
func (s *Student) Grades() []Grade {
	out := make([]Grade, 0, len(s.gradeOrder))
	for _, code := range s.gradeOrder {
		out = append(out, Grade{CourseCode: code, Value: s.grades[code]})
	}
	return out
}

// CalculateGPA applies the configured strategy to the recorded grades.
func (s *Student) CalculateGPA() float64 {
	grades := make(map[string]float64, len(s.grades))
	for code, g := range s.grades {
		grades[code] = g
	}
	return s.strategy.Calculate(grades)
}

// ══════════════════════════════════════════════════════════════════════════════
// NOTIFICATIONS
// ══════════════════════════════════════════════════════════════════════════════

// Update implements course.NotificationSink.
func (s *Student) Update(message string) {
	n := Notification{Recipient: s.Name, Message: message}
	s.inbox = append(s.inbox, n)
	if s.out != nil {
		fmt.Fprintln(s.out, n.String())
	}
}

// Notifications returns every message received, oldest first.
func (s *Student) Notifications() []Notification {
	out := make([]Notification, len(s.inbox))
	copy(out, s.inbox)
	return out
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}
