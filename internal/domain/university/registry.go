// Package university holds the registry of every known student, teacher
// and course.
//
// The registry is an ordinary value: the program builds one with New and
// passes it to whoever needs it. Default exists for callers that want a
// single process-wide instance.
package university

import (
	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/student"
	"github.com/alem-hub/university-records/internal/domain/teacher"
)

// Registry maps student and teacher IDs and course codes to entities.
// Listings follow insertion order. A Registry is not safe for concurrent use.
type Registry struct {
	students *index[*student.Student]
	teachers *index[*teacher.Teacher]
	courses  *index[*course.Course]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		students: newIndex[*student.Student](),
		teachers: newIndex[*teacher.Teacher](),
		courses:  newIndex[*course.Course](),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENTS
// ══════════════════════════════════════════════════════════════════════════════

// AddStudent registers s under its ID, replacing any student with the same ID.
func (r *Registry) AddStudent(s *student.Student) {
	r.students.put(s.ID, s)
}

// RemoveStudent unregisters the student with id. Unknown IDs are ignored.
// Course rosters are not touched.
func (r *Registry) RemoveStudent(id string) {
	r.students.remove(id)
}

// Student looks up a student by ID.
func (r *Registry) Student(id string) (*student.Student, bool) {
	return r.students.get(id)
}

// Students lists registered students in insertion order.
func (r *Registry) Students() []*student.Student {
	return r.students.values()
}

// ══════════════════════════════════════════════════════════════════════════════
// TEACHERS
// ══════════════════════════════════════════════════════════════════════════════

// AddTeacher registers t under its ID, replacing any teacher with the same ID.
func (r *Registry) AddTeacher(t *teacher.Teacher) {
	r.teachers.put(t.ID, t)
}

// RemoveTeacher unregisters the teacher with id. Unknown IDs are ignored.
func (r *Registry) RemoveTeacher(id string) {
	r.teachers.remove(id)
}

// Teacher looks up a teacher by ID.
func (r *Registry) Teacher(id string) (*teacher.Teacher, bool) {
	return r.teachers.get(id)
}

// Teachers lists registered teachers in insertion order.
func (r *Registry) Teachers() []*teacher.Teacher {
	return r.teachers.values()
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSES
// ══════════════════════════════════════════════════════════════════════════════

// AddCourse registers c under its code, replacing any course with the
// same code, which keeps codes unique.
func (r *Registry) AddCourse(c *course.Course) {
	r.courses.put(c.Code, c)
}

// RemoveCourse unregisters the course with code. Unknown codes are
// ignored. Enrolled students keep their reference to the course.
func (r *Registry) RemoveCourse(code string) {
	r.courses.remove(code)
}

// Course looks up a course by code.
func (r *Registry) Course(code string) (*course.Course, bool) {
	return r.courses.get(code)
}

// Courses lists registered courses in insertion order.
func (r *Registry) Courses() []*course.Course {
	return r.courses.values()
}

// ══════════════════════════════════════════════════════════════════════════════
// ORDERED INDEX
// ══════════════════════════════════════════════════════════════════════════════

// index is a map that remembers the order keys were first inserted.
// Replacing a value keeps its position; removing and re-adding moves it
// to the end.
type index[T any] struct {
	items map[string]T
	keys  []string
}

func newIndex[T any]() *index[T] {
	return &index[T]{items: make(map[string]T)}
}

func (ix *index[T]) put(key string, v T) {
	if _, ok := ix.items[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.items[key] = v
}

func (ix *index[T]) remove(key string) {
	if _, ok := ix.items[key]; !ok {
		return
	}
	delete(ix.items, key)
	for i, k := range ix.keys {
		if k == key {
			ix.keys = append(ix.keys[:i], ix.keys[i+1:]...)
			break
		}
	}
}

func (ix *index[T]) get(key string) (T, bool) {
	v, ok := ix.items[key]
	return v, ok
}

func (ix *index[T]) values() []T {
	out := make([]T, 0, len(ix.keys))
	for _, k := range ix.keys {
		out = append(out, ix.items[k])
	}
	return out
}
