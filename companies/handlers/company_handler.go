package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/companies/validation"
	"github.com/qolzam/jobly/internal/pkg/parser"
)

// CompanyHandler handles all company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles company creation
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}

	switch {
	case req.Handle == "":
		return errors.HandleMissingFieldError(c, "handle")
	case req.Name == "":
		return errors.HandleMissingFieldError(c, "name")
	case req.Description == "":
		return errors.HandleMissingFieldError(c, "description")
	}
	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.CreateCompany(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// ListCompanies handles GET /companies with optional filters
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	var filter models.CompanyFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	companies, err := h.companyService.ListCompanies(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles retrieving a single company with its jobs
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.companyService.GetCompany(c.UserContext(), c.Params("handle"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"company": company})
}

// UpdateCompany handles partial company updates
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var req models.UpdateCompanyRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}
	if err := validation.ValidateUpdateCompanyRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.UpdateCompany(c.UserContext(), c.Params("handle"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"company": company})
}

// DeleteCompany handles company removal
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.DeleteCompany(c.UserContext(), handle); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": handle})
}
