package handlers

import (
	"errors"

	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/arnold/studyplanner-api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) GetMembers(c *fiber.Ctx) error {
	if cached, ok := h.cache.Get(membersKey); ok {
		return c.JSON(cached)
	}

	members, err := h.store.ListMembers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	if members == nil {
		members = []models.Member{}
	}

	h.cache.Set(membersKey, members)
	return c.JSON(members)
}

func (h *Handler) CreateMember(c *fiber.Ctx) error {
	var req models.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "Name and email are required",
		})
	}

	if _, err := h.store.CreateMember(req.Name, req.Email); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.Invalidate(membersKey)
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid member ID",
		})
	}

	if err := h.store.DeleteMember(memberID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	h.cache.Invalidate(membersKey, goalsKey(memberID))
	return c.JSON(fiber.Map{"status": "success"})
}
