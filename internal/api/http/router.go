package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Staff       *handlers.StaffHandler
	Projects    *handlers.ProjectsHandler
	TimeEntries *handlers.TimeEntriesHandler
	Reports     *handlers.ReportsHandler
	Gate        *auth.Gate
}

// RegisterRoutes wires HTTP routes. The gate runs on every request and only
// intercepts paths under the configured admin prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get(auth.LoginPath, cfg.Auth.LoginPage)
	app.Get(auth.UnauthorizedPath, cfg.Auth.UnauthorizedPage)

	authGroup := app.Group("/auth")
	authGroup.Get("/login", cfg.Auth.Login)
	authGroup.Get("/callback", cfg.Auth.Callback)
	authGroup.Post("/logout", cfg.Auth.Logout)

	app.Get("/staff", cfg.Staff.List)
	app.Post("/staff", cfg.Staff.Create)
	app.Put("/staff", cfg.Staff.Update)
	app.Delete("/staff", cfg.Staff.Delete)

	app.Get("/projects", cfg.Projects.List)
	app.Post("/projects", cfg.Projects.Create)

	app.Get("/time-entries", cfg.TimeEntries.List)
	app.Post("/time-entries", cfg.TimeEntries.Create)

	app.Get("/reports", cfg.Reports.Get)
	app.Get("/reports/export", cfg.Reports.Export)

	admin := app.Group("/admin")
	admin.Get("/staff", cfg.Staff.ListWithStats)
	admin.Get("/reports", cfg.Reports.Get)
	admin.Get("/reports/export", cfg.Reports.Export)
}
