// Package course models a course and its roster. A course notifies its
// subscribers whenever the roster changes.
package course

import (
	"fmt"

	"github.com/alem-hub/university-records/internal/domain/person"
)

// ══════════════════════════════════════════════════════════════════════════════
// NOTIFICATIONS
// ══════════════════════════════════════════════════════════════════════════════

// NotificationSink receives course notifications. Implementations are
// compared with == when attaching, so they must be comparable (use
// pointer receivers).
type NotificationSink interface {
	Update(message string)
}

// Member is anything that can sit on a roster: an identity that also
// listens for notifications.
type Member interface {
	NotificationSink
	Identity() person.Person
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Course is identified by its code within the registry.
type Course struct {
	Code   string
	Name   string
	Credit int

	roster      []Member
	subscribers []NotificationSink
}

// New creates a course with an empty roster.
func New(code, name string, credit int) *Course {
	return &Course{
		Code:   code,
		Name:   name,
		Credit: credit,
	}
}

// Attach subscribes s to future notifications. Attaching twice is a no-op.
func (c *Course) Attach(s NotificationSink) {
	for _, existing := range c.subscribers {
		if existing == s {
			return
		}
	}
	c.subscribers = append(c.subscribers, s)
}

// Notify delivers message to every subscriber in subscription order.
func (c *Course) Notify(message string) {
	for _, s := range c.subscribers {
		s.Update(message)
	}
}

// AddStudent puts m on the roster, subscribes it and notifies every
// subscriber, not only m. A member already on the roster is ignored.
func (c *Course) AddStudent(m Member) {
	if c.indexOf(m) >= 0 {
		return
	}
	c.roster = append(c.roster, m)
	c.Attach(m)
	c.Notify(fmt.Sprintf("Enrolled in %s", c.Name))
}

// RemoveStudent takes m off the roster and notifies the subscribers.
// m stays subscribed and therefore also receives the drop notice.
func (c *Course) RemoveStudent(m Member) {
	i := c.indexOf(m)
	if i < 0 {
		return
	}
	c.roster = append(c.roster[:i], c.roster[i+1:]...)
	c.Notify(fmt.Sprintf("Dropped from %s", c.Name))
}

// HasStudent reports whether m is on the roster.
func (c *Course) HasStudent(m Member) bool {
	return c.indexOf(m) >= 0
}

// Students returns the roster in enrollment order.
func (c *Course) Students() []Member {
	out := make([]Member, len(c.roster))
	copy(out, c.roster)
	return out
}

// Subscribers returns the notification subscribers in subscription order.
func (c *Course) Subscribers() []NotificationSink {
	out := make([]NotificationSink, len(c.subscribers))
	copy(out, c.subscribers)
	return out
}

// String returns "Name (Code)".
func (c *Course) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Code)
}

func (c *Course) indexOf(m Member) int {
	for i, existing := range c.roster {
		if existing == m {
			return i
		}
	}
	return -1
}
