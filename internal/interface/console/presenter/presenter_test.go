package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alem-hub/university-records/internal/application/query"
	"github.com/alem-hub/university-records/internal/domain/person"
)

var cse110 = query.CourseDTO{Code: "CSE110", Name: "Intro to Programming", Credit: 3}

func TestPersonInfo(t *testing.T) {
	got := PersonInfo(person.New("MS Dhoni", "S01", "msdhoni7@uni.edu"))

	assert.Equal(t, "Name: MS Dhoni, ID: S01, Email: msdhoni7@uni.edu\n", got)
}

func TestTranscriptBlocks(t *testing.T) {
	tests := []struct {
		name    string
		dto     query.TranscriptDTO
		courses string
		grades  string
		gpa     string
	}{
		{
			name:    "ungraded",
			dto:     query.TranscriptDTO{Name: "MS Dhoni", Courses: []query.CourseDTO{cse110}},
			courses: "MS Dhoni's Courses:\n- Intro to Programming\n",
			grades:  "Grades:\n",
			gpa:     "GPA: 0.0\n",
		},
		{
			name: "graded",
			dto: query.TranscriptDTO{
				Name:    "MS Dhoni",
				Courses: []query.CourseDTO{cse110},
				Grades:  []query.GradeDTO{{CourseCode: "CSE110", Value: 4}, {CourseCode: "MTH201", Value: 3}},
				GPA:     3.5,
			},
			courses: "MS Dhoni's Courses:\n- Intro to Programming\n",
			grades:  "Grades:\nCSE110: 4.0\nMTH201: 3.0\n",
			gpa:     "GPA: 3.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.courses, StudentCourses(&tt.dto))
			assert.Equal(t, tt.grades, StudentGrades(&tt.dto))
			assert.Equal(t, tt.gpa, GPA(&tt.dto))
		})
	}
}

func TestCourseRoster(t *testing.T) {
	r := &query.RosterDTO{
		Course:   cse110,
		Students: []query.MemberDTO{{ID: "S01", Name: "MS Dhoni"}, {ID: "S02", Name: "Virat Kohli"}},
	}

	assert.Equal(t, "Students in Intro to Programming:\n- MS Dhoni\n- Virat Kohli\n", CourseRoster(r))
}

func TestTeacherCourses(t *testing.T) {
	td := query.TeacherDTO{
		MemberDTO: query.MemberDTO{ID: "T01", Name: "Goutam Gambhir"},
		Courses:   []query.CourseDTO{cse110, cse110},
	}

	assert.Equal(t, "Goutam Gambhir teaches:\n- Intro to Programming\n- Intro to Programming\n", TeacherCourses(td))
}

func TestRegistryListings(t *testing.T) {
	r := &query.RegistryDTO{
		Students: []query.MemberDTO{{ID: "S01", Name: "MS Dhoni"}},
		Teachers: []query.TeacherDTO{{MemberDTO: query.MemberDTO{ID: "T01", Name: "Goutam Gambhir"}}},
		Courses:  []query.CourseDTO{cse110},
	}

	assert.Equal(t, "Students:\n- MS Dhoni (S01)\n", RegistryStudents(r))
	assert.Equal(t, "Teachers:\n- Goutam Gambhir (T01)\n", RegistryTeachers(r))
	assert.Equal(t, "Courses:\n- Intro to Programming (CSE110)\n", RegistryCourses(r))
}

func TestRegistryListings_Empty(t *testing.T) {
	r := &query.RegistryDTO{}

	assert.Equal(t, "Students:\n", RegistryStudents(r))
	assert.Equal(t, "Teachers:\n", RegistryTeachers(r))
	assert.Equal(t, "Courses:\n", RegistryCourses(r))
}
