package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/controllers/consumer"
	"github.com/amamamou/we4lead-sub000/middleware"
	"github.com/amamamou/we4lead-sub000/models"
)

// SetupConsultantRoutes configures the student-facing directory and booking routes
func SetupConsultantRoutes(app *fiber.App) {
	counselors := app.Group("/counselors")
	counselors.Get("/", consumer.GetAllCounselors)
	counselors.Get("/:id", consumer.GetCounselorDetails)
	counselors.Get("/:id/slots", consumer.GetCounselorSlots)
	counselors.Get("/:id/bookable-days", consumer.GetBookableDays)

	appointments := app.Group("/appointments", middleware.Protected(), middleware.RequireRole(models.RoleStudent))
	appointments.Post("/", consumer.BookAppointment)
	appointments.Get("/", consumer.GetMyAppointments)
	appointments.Patch("/:id/cancel", consumer.CancelAppointment)
}
