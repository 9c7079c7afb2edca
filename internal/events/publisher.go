// Package events publishes school and student lifecycle events on Redis PubSub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event types.
const (
	TypeSchoolCreated  = "school.created"
	TypeStudentCreated = "student.created"
	TypeStudentDeleted = "student.deleted"
)

// Event is the envelope written to a channel.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// New builds an event with a fresh ID and the current time.
func New(eventType string, data interface{}) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher sends events to a named channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

// RedisPublisher publishes JSON-encoded events with PUBLISH.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish encodes event and publishes it on channel.
func (p *RedisPublisher) Publish(ctx context.Context, channel string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s on %s: %w", event.Type, channel, err)
	}
	return nil
}

// NopPublisher discards every event. Used when events are disabled.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, Event) error { return nil }

// SchoolData is the payload of school events.
type SchoolData struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StudentData is the payload of student events. It carries identifiers
// only, never contact details.
type StudentData struct {
	ID       int `json:"id"`
	SchoolID int `json:"school_id,omitempty"`
}
