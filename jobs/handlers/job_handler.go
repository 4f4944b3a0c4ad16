package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/jobs/validation"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob handles job creation
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}

	switch {
	case req.Title == "":
		return errors.HandleMissingFieldError(c, "title")
	case req.CompanyHandle == "":
		return errors.HandleMissingFieldError(c, "companyHandle")
	}
	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.CreateJob(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// ListJobs handles GET /jobs with optional filters
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	jobs, err := h.jobService.ListJobs(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles retrieving a single job with its company
// Note: id validation is handled by constraints.RequireID middleware
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := constraints.ParseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	job, err := h.jobService.GetJob(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

// UpdateJob handles partial job updates
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := constraints.ParseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var req models.UpdateJobRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}
	if err := validation.ValidateUpdateJobRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.UpdateJob(c.UserContext(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles job removal
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := constraints.ParseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.jobService.DeleteJob(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}
