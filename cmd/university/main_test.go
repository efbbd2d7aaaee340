package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-records/config"
)

const demoOutput = `[Notification - MS Dhoni]: Enrolled in Intro to Programming
Student not enrolled in this course
MS Dhoni's Courses:
- Intro to Programming
Grades:
GPA: 0.0
Students in Intro to Programming:
- MS Dhoni
Students:
- MS Dhoni (S01)
Courses:
- Intro to Programming (CSE110)
Teachers:
- Goutam Gambhir (T01)
`

func loadConfig(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(vars)
	require.NoError(t, err)
	return cfg
}

func TestRun_Demo(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), loadConfig(t, map[string]string{}), &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, demoOutput, stdout.String())
	assert.Contains(t, stderr.String(), "event_type=enrollment.enrolled")
	assert.Contains(t, stderr.String(), `msg="Student not enrolled in this course"`)
	assert.NotContains(t, stderr.String(), "event_type=grade.assigned")
}

func TestRun_QuietNotifications(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := loadConfig(t, map[string]string{
		"UNIVERSITY_NOTIFY_STDOUT":  "false",
		"UNIVERSITY_EVENTS_ENABLED": "false",
		"UNIVERSITY_LOG_LEVEL":      "error",
	})

	err := run(context.Background(), cfg, &stdout, &stderr)

	require.NoError(t, err)
	assert.NotContains(t, stdout.String(), "[Notification")
	assert.Contains(t, stdout.String(), "GPA: 0.0\n")
	assert.Empty(t, stderr.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, loadConfig(t, map[string]string{}), &bytes.Buffer{}, &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
}
