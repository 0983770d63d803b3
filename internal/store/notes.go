package store

import (
	"errors"
	"time"

	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetNote returns the most recently updated note for the goal, or nil
// when the goal has no note.
func (s *Store) GetNote(goalID uuid.UUID) (*models.StudyNote, error) {
	var note models.StudyNote
	err := s.db.Where("goal_id = ?", goalID).
		Order("updated_at DESC").
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// SaveNote upserts the goal's note in one statement, keyed on goal_id.
// A first save inserts; any later save rewrites the content and
// refreshes the updated timestamp on the same row.
func (s *Store) SaveNote(goalID, memberID uuid.UUID, noteDate models.Date, content string) error {
	note := models.StudyNote{
		UserID:   memberID,
		GoalID:   goalID,
		NoteDate: noteDate,
		Content:  content,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "goal_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		}),
	}).Create(&note).Error
}

// ListNotes returns the member's notes with note_date in [start, end]
// inclusive, each joined with its goal title, newest date first.
func (s *Store) ListNotes(memberID uuid.UUID, start, end models.Date) ([]models.WeeklyNote, error) {
	var notes []models.WeeklyNote
	err := s.db.Table("study_notes").
		Select("study_notes.*, goals.title AS goal_title").
		Joins("JOIN goals ON goals.id = study_notes.goal_id").
		Where("study_notes.user_id = ? AND study_notes.note_date BETWEEN ? AND ?", memberID, start, end).
		Order("study_notes.note_date DESC").
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteNote removes the goal's note only when the given member wrote
// it. Deleting a note that does not exist is a successful no-op.
func (s *Store) DeleteNote(goalID, memberID uuid.UUID) error {
	return s.db.Where("goal_id = ? AND user_id = ?", goalID, memberID).
		Delete(&models.StudyNote{}).Error
}

// NoteStats counts the member's notes in [start, end]; a note counts as
// completed only when its content is non-null and non-empty.
func (s *Store) NoteStats(memberID uuid.UUID, start, end models.Date) (models.NoteStats, error) {
	var stats models.NoteStats
	err := s.db.Model(&models.StudyNote{}).
		Select("COUNT(*) AS total_notes, COALESCE(SUM(CASE WHEN content IS NOT NULL AND content != '' THEN 1 ELSE 0 END), 0) AS completed_notes").
		Where("user_id = ? AND note_date BETWEEN ? AND ?", memberID, start, end).
		Scan(&stats).Error
	return stats, err
}
