package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by store operations. Anything else coming out
// of a store method is an unexpected storage fault and is passed through.
var (
	ErrGoalNotFound = errors.New("Goal not found")
	ErrEmailTaken   = errors.New("Email already exists")
)

// Store owns all persistence for members, goals and study notes.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
