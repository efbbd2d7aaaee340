package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alem-hub/university-records/internal/domain/person"
)

func TestAdministrator_CreateCourse(t *testing.T) {
	a := New(person.New("Registrar", "A01", "admin@uni.edu"))

	c := a.CreateCourse("CSE110", "Intro to Programming", 3)

	assert.Equal(t, "CSE110", c.Code)
	assert.Equal(t, "Intro to Programming", c.Name)
	assert.Equal(t, 3, c.Credit)
	assert.Empty(t, c.Students())
	assert.Equal(t, person.RoleAuthority, a.Role())
}

func TestAdministrator_CreateCourse_Independent(t *testing.T) {
	a := New(person.New("Registrar", "A01", "admin@uni.edu"))

	first := a.CreateCourse("CSE110", "Intro to Programming", 3)
	second := a.CreateCourse("CSE110", "Intro to Programming", 3)

	assert.NotSame(t, first, second)
}
