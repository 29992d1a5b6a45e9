// app.go
//
// In-process application assembly for integration tests. Mirrors the route
// table in cmd/server without metrics or swagger.

package helpers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/config"
	"github.com/kizunaworks/sasaeru/internal/handlers"
	"github.com/kizunaworks/sasaeru/internal/middleware"
	"github.com/kizunaworks/sasaeru/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Session values used by BuildTestApp's session gate.
const (
	TestSessionCookie = "session"
	TestSessionSecret = "test-secret"
)

// BuildTestApp assembles the full API surface over the given database.
func BuildTestApp(db *gorm.DB) *fiber.App {
	zlog := zap.NewNop()
	cfg := &config.Config{
		DBType:        "sqlite",
		DBDatabase:    "test",
		SessionCookie: TestSessionCookie,
		SessionSecret: TestSessionSecret,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := err.Error()
			errorType := "unknown"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
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
		},
	})

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	overviewHandler := &handlers.OverviewHandler{DB: db, Log: zlog, Cfg: cfg}
	supporterHandler := &handlers.SupporterHandler{DB: db, Log: zlog}
	serviceUserHandler := &handlers.ServiceUserHandler{DB: db, Log: zlog}
	masterDataHandler := &handlers.MasterDataHandler{DB: db, Log: zlog}
	activityHandler := &handlers.ActivityHandler{DB: db, Log: zlog}
	matchingHandler := &handlers.MatchingHandler{DB: db, Log: zlog}

	api.Get("/health", overviewHandler.Health)

	api.Use(middleware.Session(cfg.SessionCookie, cfg.SessionSecret))

	api.Get("/dashboard", overviewHandler.Dashboard)
	api.Get("/calendar", overviewHandler.Calendar)
	api.Get("/matching", matchingHandler.Search)
	api.Get("/areas", serviceUserHandler.Areas)

	api.Get("/supporters", supporterHandler.List)
	api.Get("/supporters/:id", supporterHandler.Get)
	api.Post("/supporters", supporterHandler.Create)
	api.Put("/supporters/:id", supporterHandler.Update)
	api.Delete("/supporters/:id", supporterHandler.Delete)

	api.Get("/service-users", serviceUserHandler.List)
	api.Get("/service-users/:id", serviceUserHandler.Get)
	api.Post("/service-users", serviceUserHandler.Create)
	api.Put("/service-users/:id", serviceUserHandler.Update)
	api.Delete("/service-users/:id", serviceUserHandler.Delete)

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

	api.Get("/activities", activityHandler.List)
	api.Get("/activities/:id", activityHandler.Get)
	api.Post("/activities", activityHandler.Create)
	api.Put("/activities/:id", activityHandler.Update)
	api.Delete("/activities/:id", activityHandler.Delete)
	api.Post("/activities/:id/complete", activityHandler.Complete)

	return app
}
