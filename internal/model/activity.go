package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypePatient ActivityType = "patient"
	ActivityTypeVisit   ActivityType = "visit"
)

// Activity is an append-only audit entry. There is no update or delete
// path; entries are read newest-first.
type Activity struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
