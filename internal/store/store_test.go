package store

import (
	"testing"

	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Member{},
		&models.Goal{},
		&models.StudyNote{},
	))

	return New(db), db
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func createTestMember(t *testing.T, s *Store, name, email string) *models.Member {
	t.Helper()
	member, err := s.CreateMember(name, email)
	require.NoError(t, err)
	return member
}

func createTestGoal(t *testing.T, s *Store, member *models.Member, title, date string) *models.Goal {
	t.Helper()
	goal, err := s.CreateGoal(member.ID, title, mustDate(t, date))
	require.NoError(t, err)
	return goal
}
