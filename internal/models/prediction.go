package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is a user's forecast for one fight within one league. A user
// holds at most one prediction per (league, fight); re-submitting before the
// betting cutoff replaces it in place.
type Prediction struct {
	ID        uuid.UUID  `json:"id"`
	LeagueID  uuid.UUID  `json:"league_id"`
	UserID    uuid.UUID  `json:"user_id"`
	FightID   uuid.UUID  `json:"fight_id"`
	WinnerID  *uuid.UUID `json:"winner_id,omitempty"`
	Method    *string    `json:"method,omitempty"`
	Round     *int       `json:"round,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// StandingRow is one line of a league's computed standings table. Rank is
// assigned after sorting; it is never persisted.
type StandingRow struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Points       int       `json:"points"`
	Correct      int       `json:"correct"`
	Total        int       `json:"total"`
	BetsPlaced   int       `json:"bets_placed"`
	PerfectPicks int       `json:"perfect_picks"`
	Rank         int       `json:"rank"`
}
