package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/config"
	"portfolio/admin-backend/handlers"
	"portfolio/admin-backend/internal/assetstore"
	"portfolio/admin-backend/internal/store"
	"portfolio/admin-backend/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)

	supabase, err := config.NewSupabaseClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	projects := store.NewProjectStore(supabase)
	messages := store.NewMessageStore(supabase)
	assets := assetstore.NewClient(supabase, cfg.SupabaseURL, cfg.StorageBucket, logger)

	h := handlers.NewApplicationHandler(cfg, logger, projects, messages, assets)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(logger))

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Portfolio admin backend is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")
	auth := middleware.RequireAuth([]byte(cfg.JWTSecret))

	apiV1.Post("/login", h.Login)

	// Message routes
	apiV1.Post("/message/send", h.SendMessage)
	apiV1.Get("/message/getall", h.GetAllMessages)
	apiV1.Delete("/message/delete/:id", auth, h.DeleteMessage)

	// Project routes
	apiV1.Post("/project/add", auth, h.AddProject)
	apiV1.Put("/project/update/:id", auth, h.UpdateProject)
	apiV1.Delete("/project/delete/:id", auth, h.DeleteProject)
	apiV1.Get("/project/getall", h.GetAllProjects)
	apiV1.Get("/project/get/:id", h.GetSingleProject)

	logger.Infof("Starting portfolio admin backend on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
