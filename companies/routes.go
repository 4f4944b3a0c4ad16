package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/handlers"
	"github.com/qolzam/jobly/internal/middleware/admin"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// CompaniesHandlers holds all the handlers this router needs.
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up company routes.
// Reads are public; writes require an admin token.
func RegisterRoutes(app *fiber.App, handlers *CompaniesHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminOnly := admin.New(admin.Config{})

	group := app.Group("/companies", jwtMiddleware)

	group.Get("/", handlers.CompanyHandler.ListCompanies)
	group.Post("/", adminOnly, handlers.CompanyHandler.CreateCompany)

	group.Get("/:handle", handlers.CompanyHandler.GetCompany)
	group.Patch("/:handle", adminOnly, handlers.CompanyHandler.UpdateCompany)
	group.Delete("/:handle", adminOnly, handlers.CompanyHandler.DeleteCompany)
}
