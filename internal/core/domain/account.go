package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a bank account. Balance is held in integer minor units (cents)
// and is only ever mutated through a database transaction, never in place.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
