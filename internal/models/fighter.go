package models

import (
	"time"

	"github.com/google/uuid"
)

// Fighter represents a fighter profile. Identity is immutable; the record
// stats are refreshed by the live sync job.
type Fighter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Nickname  *string   `json:"nickname,omitempty"`
	Division  string    `json:"division"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Draws     int       `json:"draws"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
