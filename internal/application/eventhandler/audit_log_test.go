package eventhandler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/infrastructure/messaging"
	"github.com/alem-hub/university-records/pkg/logger"
)

func TestAuditLog_RecordsEveryEvent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo, Format: logger.FormatLogfmt})
	bus := messaging.NewInMemoryEventBus(messaging.DefaultInMemoryEventBusConfig())
	audit := NewAuditLog(log, DefaultAuditLogConfig())
	require.NoError(t, audit.Register(bus))

	require.NoError(t, bus.Publish(shared.NewUserRegisteredEvent("S01", "student", "MS Dhoni", "msdhoni7@uni.edu")))
	require.NoError(t, bus.Publish(shared.NewStudentEnrolledEvent("S01", "CSE110", 1)))
	require.NoError(t, bus.Publish(shared.NewGradeAssignedEvent("S01", "T01", "CSE110", 4.0)))

	entries := audit.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, shared.EventUserRegistered, entries[0].Type)
	assert.Equal(t, shared.EventStudentEnrolled, entries[1].Type)
	assert.Equal(t, "S01", entries[2].AggregateID)
	assert.Equal(t, 4.0, entries[2].Payload["grade"])
	assert.Equal(t, 1, audit.Count(shared.EventGradeAssigned))

	out := buf.String()
	assert.Contains(t, out, "component=audit")
	assert.Contains(t, out, "event_type=grade.assigned")
	assert.Contains(t, out, "course_code=CSE110")
}

func TestAuditLog_MaxEntries(t *testing.T) {
	audit := NewAuditLog(nil, AuditLogConfig{MaxEntries: 2})

	for _, code := range []string{"A", "B", "C"} {
		require.NoError(t, audit.Handle(shared.NewCourseRegisteredEvent(code, code, 3, "A01")))
	}

	entries := audit.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].AggregateID)
	assert.Equal(t, "C", entries[1].AggregateID)
}

func TestAuditLog_EntriesIsACopy(t *testing.T) {
	audit := NewAuditLog(nil, AuditLogConfig{})
	require.NoError(t, audit.Handle(shared.NewCourseAssignedEvent("T01", "CSE110")))

	entries := audit.Entries()
	entries[0].AggregateID = "changed"

	assert.Equal(t, "T01", audit.Entries()[0].AggregateID)
}

func TestAuditLog_NilArguments(t *testing.T) {
	audit := NewAuditLog(nil, DefaultAuditLogConfig())

	assert.Error(t, audit.Handle(nil))
	assert.Error(t, audit.Register(nil))
}

func TestAuditLog_PayloadFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo})
	audit := NewAuditLog(log, AuditLogConfig{})

	for i := 0; i < 20; i++ {
		buf.Reset()
		require.NoError(t, audit.Handle(shared.NewGradeAssignedEvent("S01", "T01", "CSE110", 4.0)))

		line := buf.String()
		course := strings.Index(line, "course_code=")
		grade := strings.Index(line, "grade=")
		teacher := strings.Index(line, "teacher_id=")
		require.True(t, course >= 0 && grade >= 0 && teacher >= 0, line)
		assert.Less(t, course, grade)
		assert.Less(t, grade, teacher)
	}
}
