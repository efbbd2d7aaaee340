package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each one records a successful mutation of the
// university records.
const (
	// Registry events
	EventUserRegistered   EventType = "user.registered"
	EventCourseRegistered EventType = "course.registered"
	EventEntityRemoved    EventType = "registry.removed"

	// Teaching events
	EventCourseAssigned EventType = "course.assigned"
	EventGradeAssigned  EventType = "grade.assigned"

	// Enrollment events
	EventStudentEnrolled EventType = "enrollment.enrolled"
	EventStudentDropped  EventType = "enrollment.dropped"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventID returns the unique identifier of this event occurrence.
	EventID() string

	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventID implements Event interface.
func (e BaseEvent) EventID() string {
	return e.ID
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Registry Events
// ═══════════════════════════════════════════════════════════════════════════

// UserRegisteredEvent is emitted when a student or teacher enters the registry.
type UserRegisteredEvent struct {
	BaseEvent
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Payload implements Event interface.
func (e UserRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"role":  e.Role,
		"name":  e.Name,
		"email": e.Email,
	}
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent.
func NewUserRegisteredEvent(id, role, name, email string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: NewBaseEvent(EventUserRegistered, id),
		Role:      role,
		Name:      name,
		Email:     email,
	}
}

// CourseRegisteredEvent is emitted when a course enters the registry.
type CourseRegisteredEvent struct {
	BaseEvent
	Name      string `json:"name"`
	Credit    int    `json:"credit"`
	CreatedBy string `json:"created_by"`
}

// Payload implements Event interface.
func (e CourseRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":       e.Name,
		"credit":     e.Credit,
		"created_by": e.CreatedBy,
	}
}

// NewCourseRegisteredEvent creates a new CourseRegisteredEvent.
func NewCourseRegisteredEvent(code, name string, credit int, createdBy string) CourseRegisteredEvent {
	return CourseRegisteredEvent{
		BaseEvent: NewBaseEvent(EventCourseRegistered, code),
		Name:      name,
		Credit:    credit,
		CreatedBy: createdBy,
	}
}

// EntityRemovedEvent is emitted when a registry entry is removed.
type EntityRemovedEvent struct {
	BaseEvent
	Kind string `json:"kind"`
}

// Payload implements Event interface.
func (e EntityRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"kind": e.Kind,
	}
}

// NewEntityRemovedEvent creates a new EntityRemovedEvent.
func NewEntityRemovedEvent(kind, key string) EntityRemovedEvent {
	return EntityRemovedEvent{
		BaseEvent: NewBaseEvent(EventEntityRemoved, key),
		Kind:      kind,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Teaching Events
// ═══════════════════════════════════════════════════════════════════════════

// CourseAssignedEvent is emitted when a teacher takes on a course.
type CourseAssignedEvent struct {
	BaseEvent
	CourseCode string `json:"course_code"`
}

// Payload implements Event interface.
func (e CourseAssignedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_code": e.CourseCode,
	}
}

// NewCourseAssignedEvent creates a new CourseAssignedEvent.
func NewCourseAssignedEvent(teacherID, courseCode string) CourseAssignedEvent {
	return CourseAssignedEvent{
		BaseEvent:  NewBaseEvent(EventCourseAssigned, teacherID),
		CourseCode: courseCode,
	}
}

// GradeAssignedEvent is emitted when a teacher records a grade.
type GradeAssignedEvent struct {
	BaseEvent
	TeacherID  string  `json:"teacher_id"`
	CourseCode string  `json:"course_code"`
	Grade      float64 `json:"grade"`
}

// Payload implements Event interface.
func (e GradeAssignedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"teacher_id":  e.TeacherID,
		"course_code": e.CourseCode,
		"grade":       e.Grade,
	}
}

// NewGradeAssignedEvent creates a new GradeAssignedEvent.
func NewGradeAssignedEvent(studentID, teacherID, courseCode string, grade float64) GradeAssignedEvent {
	return GradeAssignedEvent{
		BaseEvent:  NewBaseEvent(EventGradeAssigned, studentID),
		TeacherID:  teacherID,
		CourseCode: courseCode,
		Grade:      grade,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Enrollment Events
// ═══════════════════════════════════════════════════════════════════════════

// EnrollmentEvent is emitted when a student joins or leaves a course.
type EnrollmentEvent struct {
	BaseEvent
	CourseCode string `json:"course_code"`
	RosterSize int    `json:"roster_size"`
}

// Payload implements Event interface.
func (e EnrollmentEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_code": e.CourseCode,
		"roster_size": e.RosterSize,
	}
}

// NewStudentEnrolledEvent creates an EnrollmentEvent of type EventStudentEnrolled.
func NewStudentEnrolledEvent(studentID, courseCode string, rosterSize int) EnrollmentEvent {
	return EnrollmentEvent{
		BaseEvent:  NewBaseEvent(EventStudentEnrolled, studentID),
		CourseCode: courseCode,
		RosterSize: rosterSize,
	}
}

// NewStudentDroppedEvent creates an EnrollmentEvent of type EventStudentDropped.
func NewStudentDroppedEvent(studentID, courseCode string, rosterSize int) EnrollmentEvent {
	return EnrollmentEvent{
		BaseEvent:  NewBaseEvent(EventStudentDropped, studentID),
		CourseCode: courseCode,
		RosterSize: rosterSize,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Event Infrastructure Interfaces
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish dispatches an event to its subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(Event) error { return nil }
