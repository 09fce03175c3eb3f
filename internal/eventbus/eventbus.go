// Package eventbus publishes result and status change notifications to NATS
// JetStream so downstream consumers (push notifications, realtime feeds) can
// react without polling the store.
package eventbus

import (
	"context"

	"github.com/google/uuid"
)

// Subjects published on the fight event stream.
const (
	SubjectFightResultSet     = "fights.result.set"
	SubjectFightResultCleared = "fights.result.cleared"
	SubjectEventStatusChanged = "fights.event.status"
)

// Publisher is an interface that defines our publisher.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

// FightResultSet is emitted when an official result lands on a fight.
type FightResultSet struct {
	FightID  uuid.UUID  `json:"fight_id"`
	EventID  uuid.UUID  `json:"event_id"`
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Method   string     `json:"method"`
	Round    *int       `json:"round,omitempty"`
}

// FightResultCleared is emitted when an administrator resets a result.
type FightResultCleared struct {
	FightID uuid.UUID `json:"fight_id"`
	EventID uuid.UUID `json:"event_id"`
}

// EventStatusChanged is emitted on every forward event status transition.
type EventStatusChanged struct {
	EventID uuid.UUID `json:"event_id"`
	Status  string    `json:"status"`
}

// NopPublisher drops every message. Used in tests and offline tooling.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
