package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/controllers/counselor"
	"github.com/amamamou/we4lead-sub000/middleware"
	"github.com/amamamou/we4lead-sub000/models"
)

// SetupCounselorRoutes configures the counselor dashboard routes
func SetupCounselorRoutes(app *fiber.App) {
	me := app.Group("/counselor", middleware.Protected(), middleware.RequireRole(models.RoleCounselor))
	me.Get("/profile", counselor.GetProfile)
	me.Put("/profile", counselor.UpdateDetails)
	me.Post("/profile/avatar", counselor.UploadAvatar)
	me.Get("/schedule", counselor.GetSchedule)
	me.Patch("/appointments/:id/status", counselor.UpdateAppointmentStatus)
}
