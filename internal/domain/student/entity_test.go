package student

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
)

func newDhoni(opts ...Option) *Student {
	return New(person.New("MS Dhoni", "S01", "msdhoni7@uni.edu"), opts...)
}

func TestStudent_AddCourse(t *testing.T) {
	s := newDhoni()
	c := course.New("CSE110", "Intro to Programming", 3)

	require.NoError(t, s.AddCourse(c))

	assert.True(t, s.IsEnrolled("CSE110"))
	require.Len(t, s.Courses(), 1)
	assert.Same(t, c, s.Courses()[0])

	require.Len(t, c.Students(), 1)
	assert.Same(t, s, c.Students()[0])
	assert.Equal(t, []Notification{{Recipient: "MS Dhoni", Message: "Enrolled in Intro to Programming"}}, s.Notifications())
}

func TestStudent_AddCourse_Twice(t *testing.T) {
	s := newDhoni()
	c := course.New("CSE110", "Intro to Programming", 3)
	require.NoError(t, s.AddCourse(c))

	err := s.AddCourse(c)

	assert.ErrorIs(t, err, shared.ErrAlreadyEnrolled)
	assert.True(t, shared.IsAlreadyExists(err))
	assert.Len(t, s.Courses(), 1)
	assert.Len(t, c.Students(), 1)
	assert.Len(t, s.Notifications(), 1)
}

func TestStudent_AddCourse_SameCodeDifferentCourse(t *testing.T) {
	s := newDhoni()
	first := course.New("CSE110", "Intro to Programming", 3)
	second := course.New("CSE110", "Duplicate Listing", 3)
	require.NoError(t, s.AddCourse(first))

	err := s.AddCourse(second)

	assert.ErrorIs(t, err, shared.ErrAlreadyEnrolled)
	assert.Empty(t, second.Students())
}

func TestStudent_DropCourse(t *testing.T) {
	s := newDhoni()
	c := course.New("CSE110", "Intro to Programming", 3)
	require.NoError(t, s.AddCourse(c))

	require.NoError(t, s.DropCourse("CSE110"))

	assert.False(t, s.IsEnrolled("CSE110"))
	assert.Empty(t, s.Courses())
	assert.Empty(t, c.Students())
	assert.Equal(t, "Dropped from Intro to Programming", s.Notifications()[1].Message)
}

func TestStudent_DropCourse_Unknown(t *testing.T) {
	s := newDhoni()
	c := course.New("CSE110", "Intro to Programming", 3)
	require.NoError(t, s.AddCourse(c))

	err := s.DropCourse("CSE999")

	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
	assert.True(t, shared.IsNotFound(err))
	assert.Len(t, s.Courses(), 1)
	assert.Len(t, c.Students(), 1)
}

func TestStudent_ReenrollAfterDrop(t *testing.T) {
	s := newDhoni()
	a := course.New("CSE110", "Intro to Programming", 3)
	b := course.New("MTH201", "Linear Algebra", 4)
	require.NoError(t, s.AddCourse(a))
	require.NoError(t, s.AddCourse(b))
	require.NoError(t, s.DropCourse("CSE110"))

	require.NoError(t, s.AddCourse(a))

	courses := s.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "MTH201", courses[0].Code)
	assert.Equal(t, "CSE110", courses[1].Code)
	assert.Len(t, a.Subscribers(), 1)
}

func TestStudent_Grades(t *testing.T) {
	s := newDhoni()

	s.SetGrade("b", 4.0)
	s.SetGrade("a", 3.0)
	s.SetGrade("b", 3.5)

	assert.Equal(t, []Grade{{CourseCode: "b", Value: 3.5}, {CourseCode: "a", Value: 3.0}}, s.Grades())

	g, ok := s.Grade("a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, g)

	_, ok = s.Grade("missing")
	assert.False(t, ok)
}

func TestStudent_CalculateGPA(t *testing.T) {
	s := newDhoni()
	assert.Equal(t, 0.0, s.CalculateGPA())

	s.SetGrade("a", 3.0)
	s.SetGrade("b", 4.0)
	assert.Equal(t, 3.5, s.CalculateGPA())
}

func TestStudent_CalculateGPA_CustomStrategy(t *testing.T) {
	highest := gpa.StrategyFunc(func(grades map[string]float64) float64 {
		var best float64
		for _, g := range grades {
			if g > best {
				best = g
			}
		}
		return best
	})
	s := newDhoni(WithStrategy(highest))
	s.SetGrade("a", 2.0)
	s.SetGrade("b", 3.7)

	assert.Equal(t, 3.7, s.CalculateGPA())
}

func TestStudent_WithStrategyNilKeepsDefault(t *testing.T) {
	s := newDhoni(WithStrategy(nil))
	s.SetGrade("a", 2.0)

	assert.Equal(t, 2.0, s.CalculateGPA())
}

func TestStudent_UpdateWritesNotification(t *testing.T) {
	var buf bytes.Buffer
	s := newDhoni(WithNotificationWriter(&buf))

	s.Update("Grade 4.0 assigned for CSE110")

	assert.Equal(t, "[Notification - MS Dhoni]: Grade 4.0 assigned for CSE110\n", buf.String())
	assert.Equal(t, person.RoleStudent, s.Role())
}
