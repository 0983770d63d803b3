package handlers

import (
	"github.com/arnold/studyplanner-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) GetNote(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	note, err := h.store.GetNote(goalID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	// note is nil when the goal has no note; that is not an error.
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   note,
	})
}

func (h *Handler) SaveNote(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	var req models.SaveNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if req.UserID == uuid.Nil || req.NoteDate.IsZero() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "user_id and note_date are required",
		})
	}

	if err := h.store.SaveNote(goalID, req.UserID, req.NoteDate, req.Content); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Note saved successfully",
	})
}

func (h *Handler) DeleteNote(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid goal ID",
		})
	}

	memberID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": "user_id is required",
		})
	}

	if err := h.store.DeleteNote(goalID, memberID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Note deleted successfully",
	})
}

func (h *Handler) GetWeeklyNotes(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid member ID",
		})
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	notes, err := h.store.ListNotes(memberID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	if notes == nil {
		notes = []models.WeeklyNote{}
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   notes,
	})
}

func (h *Handler) GetNoteStats(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid member ID",
		})
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	stats, err := h.store.NoteStats(memberID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   stats,
	})
}

func parseDateRange(c *fiber.Ctx) (models.Date, models.Date, error) {
	start, err := models.ParseDate(c.Query("start_date"))
	if err != nil {
		return models.Date{}, models.Date{}, fiber.NewError(fiber.StatusUnprocessableEntity, "start_date must be a YYYY-MM-DD date")
	}
	end, err := models.ParseDate(c.Query("end_date"))
	if err != nil {
		return models.Date{}, models.Date{}, fiber.NewError(fiber.StatusUnprocessableEntity, "end_date must be a YYYY-MM-DD date")
	}
	return start, end, nil
}
