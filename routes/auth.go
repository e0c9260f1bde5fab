package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amamamou/we4lead-sub000/controllers"
	"github.com/amamamou/we4lead-sub000/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/profile", middleware.Protected(), controllers.GetUserProfile)
}
