package teacher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-records/internal/domain/course"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/student"
)

func fixture(t *testing.T) (*Teacher, *student.Student, *course.Course) {
	t.Helper()

	tc := New(person.New("Goutam Gambhir", "T01", "gg5@uni.edu"))
	st := student.New(person.New("MS Dhoni", "S01", "msdhoni7@uni.edu"))
	c := course.New("CSE110", "Intro to Programming", 3)

	tc.AssignCourse(c)
	require.NoError(t, st.AddCourse(c))
	return tc, st, c
}

func TestTeacher_AssignCourse_AllowsDuplicates(t *testing.T) {
	tc := New(person.New("Goutam Gambhir", "T01", "gg5@uni.edu"))
	c := course.New("CSE110", "Intro to Programming", 3)

	tc.AssignCourse(c)
	tc.AssignCourse(c)

	assert.Len(t, tc.Courses(), 2)
	assert.Equal(t, person.RoleTeacher, tc.Role())
}

func TestTeacher_AssignGrade(t *testing.T) {
	tc, st, _ := fixture(t)

	require.NoError(t, tc.AssignGrade(st, "CSE110", 4.0))

	g, ok := st.Grade("CSE110")
	require.True(t, ok)
	assert.Equal(t, 4.0, g)
	assert.Equal(t, 4.0, st.CalculateGPA())

	notes := st.Notifications()
	assert.Equal(t, "Grade 4.0 assigned for CSE110", notes[len(notes)-1].Message)
}

func TestTeacher_AssignGrade_MismatchedCode(t *testing.T) {
	tc, st, _ := fixture(t)
	before := len(st.Notifications())

	err := tc.AssignGrade(st, "CSE101", 4.0)

	assert.ErrorIs(t, err, shared.ErrNotEnrolled)
	assert.True(t, shared.IsSoftFailure(err))
	assert.Empty(t, st.Grades())
	assert.Equal(t, 0.0, st.CalculateGPA())
	assert.Len(t, st.Notifications(), before)
}

func TestTeacher_AssignGrade_NoRangeOrOwnershipCheck(t *testing.T) {
	other := New(person.New("Someone Else", "T02", "se@uni.edu"))
	_, st, _ := fixture(t)

	require.NoError(t, other.AssignGrade(st, "CSE110", 11.5))

	g, _ := st.Grade("CSE110")
	assert.Equal(t, 11.5, g)
}

func TestTeacher_AssignGrade_Overwrites(t *testing.T) {
	tc, st, _ := fixture(t)

	require.NoError(t, tc.AssignGrade(st, "CSE110", 3.0))
	require.NoError(t, tc.AssignGrade(st, "CSE110", 3.5))

	assert.Len(t, st.Grades(), 1)
	assert.Equal(t, 3.5, st.CalculateGPA())
}
