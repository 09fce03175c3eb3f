package models

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus defines the status of an event. Transitions are forward-only:
// SCHEDULED -> LIVE -> FINISHED.
type EventStatus string

const (
	EventStatusScheduled EventStatus = "SCHEDULED"
	EventStatusLive      EventStatus = "LIVE"
	EventStatusFinished  EventStatus = "FINISHED"
)

// Event represents a fight card: a named event with a date, a location and
// optional card-section start times used as betting cutoffs.
type Event struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Date            time.Time   `json:"date"`
	Location        string      `json:"location"`
	Status          EventStatus `json:"status"`
	PrelimsStartAt  *time.Time  `json:"prelims_start_at,omitempty"`
	MainCardStartAt *time.Time  `json:"main_card_start_at,omitempty"`
	Fights          []Fight     `json:"fights,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CanTransitionTo reports whether moving to next is a forward transition.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventStatusScheduled:
		return next == EventStatusLive || next == EventStatusFinished
	case EventStatusLive:
		return next == EventStatusFinished
	default:
		return false
	}
}
