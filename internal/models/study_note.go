package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyNote is the free-text note attached to a goal. The unique index
// on GoalID keeps one current note per goal.
type StudyNote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	GoalID    uuid.UUID `json:"goal_id" gorm:"type:uuid;uniqueIndex;not null"`
	NoteDate  Date      `json:"note_date" gorm:"not null"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *StudyNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// StudyNote DTOs
type SaveNoteRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	NoteDate Date      `json:"note_date" validate:"required"`
	Content  string    `json:"content"`
}

// WeeklyNote is a note row joined with the title of its goal, as
// returned by the weekly listing.
type WeeklyNote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	GoalID    uuid.UUID `json:"goal_id"`
	NoteDate  Date      `json:"note_date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GoalTitle string    `json:"goal_title"`
}

type NoteStats struct {
	TotalNotes     int64 `json:"total_notes"`
	CompletedNotes int64 `json:"completed_notes"`
}
