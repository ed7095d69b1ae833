package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every persisted model (via Base).
type Entity interface {
	EntityID() string
	Touch(now time.Time)
}

// Base holds the fields shared by all entities: an opaque immutable ID
// plus creation and last-modified timestamps.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase generates a fresh identity with both timestamps set to now.
// IDs are generated in Go (not by the database) so the same models work
// on SQLite and PostgreSQL alike.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Base) EntityID() string { return b.ID }

// Touch refreshes the last-modified timestamp.
func (b *Base) Touch(now time.Time) { b.UpdatedAt = now }
