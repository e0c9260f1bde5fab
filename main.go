package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/amamamou/we4lead-sub000/cron"
	"github.com/amamamou/we4lead-sub000/db"
	"github.com/amamamou/we4lead-sub000/redis"
	"github.com/amamamou/we4lead-sub000/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("We4Lead counseling API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupConsultantRoutes(app)
	routes.SetupCounselorRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
