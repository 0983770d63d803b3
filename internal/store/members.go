package store

import (
	"errors"

	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) CreateMember(name, email string) (*models.Member, error) {
	var existing models.Member
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := models.Member{
		Name:  name,
		Email: email,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteMember removes the member and every goal the member owns. Both
// deletes run in one transaction so a failure leaves no orphaned goals.
func (s *Store) DeleteMember(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Member{}).Error
	})
}
