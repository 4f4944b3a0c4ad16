package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/admin"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs.
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up job routes.
func RegisterRoutes(app *fiber.App, handlers *JobsHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminOnly := admin.New(admin.Config{})
	requireID := constraints.RequireID("id")

	group := app.Group("/jobs", jwtMiddleware)

	group.Get("/", handlers.JobHandler.ListJobs)
	group.Post("/", adminOnly, handlers.JobHandler.CreateJob)

	group.Get("/:id", requireID, handlers.JobHandler.GetJob)
	group.Patch("/:id", requireID, adminOnly, handlers.JobHandler.UpdateJob)
	group.Delete("/:id", requireID, adminOnly, handlers.JobHandler.DeleteJob)
}
