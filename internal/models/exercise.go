package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseDB represents an activity entry record in the database.
// UserID is a back-reference only; the store does not enforce it.
type ExerciseDB struct {
	ExerciseID  uuid.UUID `json:"id" db:"exercise_id"`          // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	Description string    `json:"description" db:"description"` // Activity description
	Duration    int       `json:"duration" db:"duration"`       // Positive minute count
	Date        time.Time `json:"date" db:"date"`               // Calendar date of the activity
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// LogFilter restricts a log query to an inclusive date range and a result cap.
// Nil bounds mean no restriction; Limit 0 means unbounded.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
