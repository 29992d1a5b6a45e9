package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/kizunaworks/sasaeru/internal/config"
	"github.com/kizunaworks/sasaeru/internal/database"
	"github.com/kizunaworks/sasaeru/internal/handlers"
	"github.com/kizunaworks/sasaeru/internal/logging"
	"github.com/kizunaworks/sasaeru/internal/middleware"
	"github.com/kizunaworks/sasaeru/internal/types"

	_ "github.com/kizunaworks/sasaeru/docs/api" // Swagger docs
)

// @title Sasaeru API
// @version 1.0.0
// @description Volunteer coordination service for supporters and service users
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/kizunaworks/sasaeru

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed required master data
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed master data: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("sasaeru")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	overviewHandler := &handlers.OverviewHandler{DB: db, Log: zlog, Cfg: cfg}
	supporterHandler := &handlers.SupporterHandler{DB: db, Log: zlog}
	serviceUserHandler := &handlers.ServiceUserHandler{DB: db, Log: zlog}
	masterDataHandler := &handlers.MasterDataHandler{DB: db, Log: zlog}
	activityHandler := &handlers.ActivityHandler{DB: db, Log: zlog}
	matchingHandler := &handlers.MatchingHandler{DB: db, Log: zlog}

	// Health is reachable without a session for container probes
	api.Get("/health", overviewHandler.Health)

	// Everything else requires the staff session cookie
	api.Use(middleware.Session(cfg.SessionCookie, cfg.SessionSecret))

	// Overview routes
	api.Get("/dashboard", overviewHandler.Dashboard)
	api.Get("/calendar", overviewHandler.Calendar)
	api.Get("/matching", matchingHandler.Search)
	api.Get("/areas", serviceUserHandler.Areas)

	// Supporter routes
	api.Get("/supporters", supporterHandler.List)
	api.Get("/supporters/:id", supporterHandler.Get)
	api.Post("/supporters", supporterHandler.Create)
	api.Put("/supporters/:id", supporterHandler.Update)
	api.Delete("/supporters/:id", supporterHandler.Delete)

	// Service user routes
	api.Get("/service-users", serviceUserHandler.List)
	api.Get("/service-users/:id", serviceUserHandler.Get)
	api.Post("/service-users", serviceUserHandler.Create)
	api.Put("/service-users/:id", serviceUserHandler.Update)
	api.Delete("/service-users/:id", serviceUserHandler.Delete)

	// Master data routes
	api.Get("/skills", masterDataHandler.ListSkills)
	api.Post("/skills", masterDataHandler.CreateSkill)
	api.Put("/skills/:id", masterDataHandler.UpdateSkill)
	api.Delete("/skills/:id", masterDataHandler.DeleteSkill)
	api.Get("/time-slots", masterDataHandler.ListTimeSlots)
	api.Post("/time-slots", masterDataHandler.CreateTimeSlot)
	api.Put("/time-slots/:id", masterDataHandler.UpdateTimeSlot)
	api.Delete("/time-slots/:id", masterDataHandler.DeleteTimeSlot)
	api.Get("/activity-statuses", masterDataHandler.ListActivityStatuses)
	api.Post("/activity-statuses", masterDataHandler.CreateActivityStatus)
	api.Put("/activity-statuses/:id", masterDataHandler.UpdateActivityStatus)
	api.Delete("/activity-statuses/:id", masterDataHandler.DeleteActivityStatus)

	// Activity routes
	api.Get("/activities", activityHandler.List)
	api.Get("/activities/:id", activityHandler.Get)
	api.Post("/activities", activityHandler.Create)
	api.Put("/activities/:id", activityHandler.Update)
	api.Delete("/activities/:id", activityHandler.Delete)
	api.Post("/activities/:id/complete", activityHandler.Complete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Check for application errors
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
