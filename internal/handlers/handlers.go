package handlers

import (
	"github.com/arnold/studyplanner-api/internal/cache"
	"github.com/arnold/studyplanner-api/internal/store"
	"github.com/google/uuid"
)

const (
	membersKey     = "members"
	goalsKeyPrefix = "goals:"
)

// Handler translates HTTP requests into store operations. It holds no
// request state of its own.
type Handler struct {
	store *store.Store
	cache *cache.Cache
}

func New(st *store.Store, c *cache.Cache) *Handler {
	return &Handler{store: st, cache: c}
}

func goalsKey(memberID uuid.UUID) string {
	return goalsKeyPrefix + memberID.String()
}
