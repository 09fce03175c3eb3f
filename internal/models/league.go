package models

import (
	"time"

	"github.com/google/uuid"
)

// LeagueRole represents a member's role within a league.
type LeagueRole string

const (
	LeagueRoleAdmin  LeagueRole = "ADMIN"
	LeagueRoleMember LeagueRole = "MEMBER"
)

// League represents a prediction league. Code is the human-typable join
// code. Archived leagues are hidden from listings but never destroyed.
type League struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	AdminID         uuid.UUID       `json:"admin_id"`
	IsArchived      bool            `json:"is_archived"`
	SurvivorEnabled bool            `json:"survivor_enabled"`
	ScoringSettings ScoringSettings `json:"scoring_settings"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LeagueMember is the membership row joining a user to a league. A
// (league, user) pair appears at most once.
type LeagueMember struct {
	LeagueID uuid.UUID  `json:"league_id"`
	UserID   uuid.UUID  `json:"user_id"`
	Username string     `json:"username"`
	Role     LeagueRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}
