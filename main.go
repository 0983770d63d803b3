package main

import (
	"log"

	"github.com/arnold/studyplanner-api/internal/cache"
	"github.com/arnold/studyplanner-api/internal/config"
	"github.com/arnold/studyplanner-api/internal/database"
	"github.com/arnold/studyplanner-api/internal/handlers"
	"github.com/arnold/studyplanner-api/internal/routes"
	"github.com/arnold/studyplanner-api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	h := handlers.New(store.New(database.DB), cache.New(cfg.CacheTTL))
	routes.Setup(app, h)

	log.Fatal(app.Listen(":" + cfg.Port))
}
