package store

import (
	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) ListGoals(memberID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", memberID).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal inserts a goal with the completion flag off. The member id
// is trusted; existence is not checked here.
func (s *Store) CreateGoal(memberID uuid.UUID, title string, targetDate models.Date) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      memberID,
		Title:       title,
		TargetDate:  targetDate,
		IsCompleted: false,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// CompleteGoal unconditionally marks the goal done. Idempotent, and a
// no-op for an absent id.
func (s *Store) CompleteGoal(id uuid.UUID) error {
	return s.db.Model(&models.Goal{}).Where("id = ?", id).
		Update("is_completed", true).Error
}

// ToggleGoal flips the completion flag in a single conditional update,
// so concurrent toggles of the same goal cannot lose a write. Returns
// the new value of the flag.
func (s *Store) ToggleGoal(id uuid.UUID) (bool, error) {
	res := s.db.Model(&models.Goal{}).Where("id = ?", id).
		Update("is_completed", gorm.Expr("NOT is_completed"))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, ErrGoalNotFound
	}

	var goal models.Goal
	if err := s.db.Select("is_completed").First(&goal, "id = ?", id).Error; err != nil {
		return false, err
	}
	return goal.IsCompleted, nil
}

// DeleteGoal removes the goal regardless of its completion state. The
// goal's note, if any, stays; note removal is a separate operation.
func (s *Store) DeleteGoal(id uuid.UUID) error {
	res := s.db.Where("id = ?", id).Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
