package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/admin"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
// Every route needs a logged-in user. Collection routes are admin only; a
// single user is reachable by admins and by that user.
func RegisterRoutes(app *fiber.App, handlers *UsersHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminOnly := admin.New(admin.Config{})
	adminOrSelf := admin.AdminOrSelf("username")

	group := app.Group("/users", jwtMiddleware, authjwt.Required())

	group.Post("/", adminOnly, handlers.UserHandler.CreateUser)
	group.Get("/", adminOnly, handlers.UserHandler.ListUsers)

	group.Get("/:username", adminOrSelf, handlers.UserHandler.GetUser)
	group.Patch("/:username", adminOrSelf, handlers.UserHandler.UpdateUser)
	group.Delete("/:username", adminOrSelf, handlers.UserHandler.DeleteUser)
	group.Post("/:username/jobs/:id", constraints.RequireID("id"), adminOrSelf, handlers.UserHandler.ApplyToJob)
}
