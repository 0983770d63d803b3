package routes

import (
	"github.com/arnold/studyplanner-api/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	app.Get("/members", h.GetMembers)
	app.Post("/members", h.CreateMember)
	app.Delete("/members/:id", h.DeleteMember)

	app.Get("/goals/:memberId", h.GetGoals)
	app.Post("/goals", h.CreateGoal)
	app.Put("/goals/:id", h.CompleteGoal)
	app.Put("/goals/:id/toggle", h.ToggleGoal)
	app.Delete("/goals/:id", h.DeleteGoal)

	app.Get("/goals/:id/notes", h.GetNote)
	app.Post("/goals/:id/notes", h.SaveNote)
	app.Delete("/goals/:id/notes", h.DeleteNote)

	app.Get("/users/:id/notes/weekly", h.GetWeeklyNotes)
	app.Get("/users/:id/notes/stats", h.GetNoteStats)
}
