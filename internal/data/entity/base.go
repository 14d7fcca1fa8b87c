package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base covers the records in this system: they are created once and never
// mutated or deleted afterwards.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
