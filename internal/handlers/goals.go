package handlers

import (
	"errors"

	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/arnold/studyplanner-api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) GetGoals(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid member ID",
		})
	}

	if cached, ok := h.cache.Get(goalsKey(memberID)); ok {
		return c.JSON(cached)
	}

	goals, err := h.store.ListGoals(memberID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	h.cache.Set(goalsKey(memberID), goals)
	return c.JSON(goals)
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if req.UserID == uuid.Nil || req.Title == "" || req.TargetDate.IsZero() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "user_id, title and target_date are required",
		})
	}

	if _, err := h.store.CreateGoal(req.UserID, req.Title, req.TargetDate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.Invalidate(goalsKey(req.UserID))
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *Handler) CompleteGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	if err := h.store.CompleteGoal(goalID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.InvalidatePrefix(goalsKeyPrefix)
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *Handler) ToggleGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	isCompleted, err := h.store.ToggleGoal(goalID)
	if err != nil {
		if errors.Is(err, store.ErrGoalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.InvalidatePrefix(goalsKeyPrefix)
	return c.JSON(fiber.Map{
		"status":       "success",
		"is_completed": isCompleted,
	})
}

func (h *Handler) DeleteGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	if err := h.store.DeleteGoal(goalID); err != nil {
		if errors.Is(err, store.ErrGoalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.InvalidatePrefix(goalsKeyPrefix)
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Goal deleted successfully",
	})
}
