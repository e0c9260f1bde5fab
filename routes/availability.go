package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/controllers"
	"github.com/amamamou/we4lead-sub000/middleware"
	"github.com/amamamou/we4lead-sub000/models"
)

// SetupAvailabilityRoutes configures the counselor availability store routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability", middleware.Protected(), middleware.RequireRole(models.RoleCounselor))
	availability.Get("/", controllers.GetAvailability)
	availability.Post("/", controllers.CreateAvailability)
	availability.Patch("/:id", controllers.UpdateAvailability)
	availability.Delete("/:id", controllers.DeleteAvailability)
}
