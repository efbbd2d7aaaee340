package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_DisplayInfo(t *testing.T) {
	p := New("Registrar", "A01", "admin@uni.edu")

	assert.Equal(t, "Name: Registrar, ID: A01, Email: admin@uni.edu", p.DisplayInfo())
	assert.Equal(t, p, p.Identity())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in    string
		want  Role
		valid bool
	}{
		{"student", RoleStudent, true},
		{" Teacher ", RoleTeacher, true},
		{"AUTHORITY", RoleAuthority, true},
		{"admin", Role("admin"), false},
		{"", Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseRole(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.IsValid())
		})
	}
}
