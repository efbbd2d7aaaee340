package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestLogger_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelInfo, Format: FormatLogfmt})

	log.With(Component("enrollment")).Info("student enrolled", StudentID("S01"), CourseCode("CSE110"))

	line := buf.String()
	assert.Contains(t, line, "level=info")
	assert.Contains(t, line, `msg="student enrolled"`)
	assert.Contains(t, line, "component=enrollment")
	assert.Contains(t, line, "student_id=S01")
	assert.Contains(t, line, "course_code=CSE110")
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug, Format: FormatJSON})

	log.Warn("grade rejected", Err(errors.New("not enrolled")), Grade(4.0))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "grade rejected", entry["msg"])
	assert.Equal(t, "not enrolled", entry["error"])
	assert.Equal(t, 4.0, entry["grade"])
	assert.Contains(t, entry, "ts")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	log.WithLevel(LevelDebug).Debug("now shown")
	assert.Contains(t, buf.String(), `msg="now shown"`)
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Output: &buf})
	_ = parent.With(String("child", "yes"))

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "child=yes")
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.False(t, log.Enabled(LevelError))
	log.Error("nothing happens")
}

func TestContext(t *testing.T) {
	log := Nop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
