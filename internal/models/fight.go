package models

import (
	"time"

	"github.com/google/uuid"
)

// FightStatus defines the status of a fight. LIVE is modeled at the event
// level only; a fight is either still scheduled or has an official result.
type FightStatus string

const (
	FightStatusScheduled FightStatus = "SCHEDULED"
	FightStatusFinished  FightStatus = "FINISHED"
)

// Method codes for fight results. The vocabulary is otherwise free-form;
// DRAW and NC are reserved and mean the fight resolved without a winner.
const (
	MethodKO         = "KO/TKO"
	MethodSubmission = "SUBMISSION"
	MethodDecision   = "DECISION"
	MethodDraw       = "DRAW"
	MethodNoContest  = "NC"
)

// MethodHasNoWinner reports whether a result method implies a nil winner.
func MethodHasNoWinner(method string) bool {
	return method == MethodDraw || method == MethodNoContest
}

// Fight represents one bout on an event's card. Fighter order is
// presentational, not semantic. Result fields are nil until an official
// result is set, at which point Status becomes FINISHED.
type Fight struct {
	ID            uuid.UUID   `json:"id"`
	EventID       uuid.UUID   `json:"event_id"`
	FighterAID    uuid.UUID   `json:"fighter_a_id"`
	FighterBID    uuid.UUID   `json:"fighter_b_id"`
	Division      string      `json:"division"`
	Rounds        int         `json:"rounds"`
	IsMainEvent   bool        `json:"is_main_event"`
	IsCoMainEvent bool        `json:"is_co_main_event"`
	IsMainCard    bool        `json:"is_main_card"`
	Status        FightStatus `json:"status"`
	WinnerID      *uuid.UUID  `json:"winner_id,omitempty"`
	Method        *string     `json:"method,omitempty"`
	Round         *int        `json:"round,omitempty"`
	Time          *string     `json:"time,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// HasFighter reports whether id is one of the fight's two fighters.
func (f *Fight) HasFighter(id uuid.UUID) bool {
	return f.FighterAID == id || f.FighterBID == id
}

// FightResult is an official outcome as entered by an administrator or the
// live sync job. Winner is nil for a draw or no contest.
type FightResult struct {
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Method   string     `json:"method"`
	Round    *int       `json:"round,omitempty"`
	Time     *string    `json:"time,omitempty"`
}
