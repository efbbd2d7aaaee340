// Package eventhandler contains domain event handlers.
package eventhandler

import (
	"errors"
	"sort"
	"time"

	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// AUDIT LOG HANDLER
// Writes one structured log line per domain event and keeps the trail in
// memory so callers can inspect what happened during a run.
// ═══════════════════════════════════════════════════════════════════════════

// AuditEntry is one recorded event.
type AuditEntry struct {
	EventID     string
	Type        shared.EventType
	AggregateID string
	OccurredAt  time.Time
	Payload     map[string]interface{}
}

// AuditLogConfig configures the handler.
type AuditLogConfig struct {
	// MaxEntries caps the in-memory trail; the oldest entries are dropped
	// first. Zero keeps everything.
	MaxEntries int
}

// DefaultAuditLogConfig returns the default configuration.
func DefaultAuditLogConfig() AuditLogConfig {
	return AuditLogConfig{MaxEntries: 1000}
}

// AuditLog records every event it receives.
type AuditLog struct {
	logger  *logger.Logger
	config  AuditLogConfig
	entries []AuditEntry
}

// NewAuditLog creates a new AuditLog. A nil logger discards output.
func NewAuditLog(log *logger.Logger, config AuditLogConfig) *AuditLog {
	if log == nil {
		log = logger.Nop()
	}
	return &AuditLog{
		logger: log.With(logger.Component("audit")),
		config: config,
	}
}

// Register subscribes the handler to every event type.
func (h *AuditLog) Register(sub shared.EventSubscriber) error {
	if sub == nil {
		return errors.New("audit log: nil subscriber")
	}
	return sub.SubscribeAll(h.Handle)
}

// Handle implements shared.EventHandler.
func (h *AuditLog) Handle(event shared.Event) error {
	if event == nil {
		return errors.New("audit log: nil event")
	}

	entry := AuditEntry{
		EventID:     event.EventID(),
		Type:        event.EventType(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt(),
		Payload:     event.Payload(),
	}

	fields := []logger.Field{
		logger.EventType(string(entry.Type)),
		logger.String("event_id", entry.EventID),
		logger.String("aggregate_id", entry.AggregateID),
	}
	keys := make([]string, 0, len(entry.Payload))
	for k := range entry.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, logger.Any(k, entry.Payload[k]))
	}
	h.logger.Info("domain event", fields...)

	h.entries = append(h.entries, entry)
	if h.config.MaxEntries > 0 && len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
	return nil
}

// Entries returns a copy of the trail, oldest first.
func (h *AuditLog) Entries() []AuditEntry {
	out := make([]AuditEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Count returns how many entries of the given type are on the trail.
func (h *AuditLog) Count(t shared.EventType) int {
	n := 0
	for _, e := range h.entries {
		if e.Type == t {
			n++
		}
	}
	return n
}
