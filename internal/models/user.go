package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the system. Authentication happens against an
// external identity provider; this is only the local profile row.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
