package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's funds. Balance is in minor units and must equal
// the sum of amounts of the wallet's COMPLETED transactions at all times.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"` // minor units, never negative
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
