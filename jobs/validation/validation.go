package validation

import (
	"fmt"
	"strings"

	companyValidation "github.com/qolzam/jobly/companies/validation"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/jobs/models"
)

// ValidateCreateJobRequest validates the create job request
func ValidateCreateJobRequest(req *models.CreateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if req.CompanyHandle == "" {
		return fmt.Errorf("companyHandle is required")
	}
	if len(req.CompanyHandle) > companyValidation.MaxHandleLength {
		return fmt.Errorf("companyHandle must be at most %d characters", companyValidation.MaxHandleLength)
	}
	return validateTerms(req.Salary, req.Equity)
}

// ValidateUpdateJobRequest validates update job request
func ValidateUpdateJobRequest(req *models.UpdateJobRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return validateTerms(req.Salary, req.Equity)
}

func validateTerms(salary *int, equity *float64) error {
	if salary != nil && *salary < 0 {
		return fmt.Errorf("salary must be 0 or greater")
	}
	if err := clause.CheckInt32("salary", salary); err != nil {
		return err
	}
	if equity != nil && (*equity < 0 || *equity > 1) {
		return fmt.Errorf("equity must be between 0 and 1")
	}
	return nil
}
