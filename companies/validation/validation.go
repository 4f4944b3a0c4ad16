package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/clause"
)

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// MaxHandleLength is the width of the handle column.
const MaxHandleLength = 25

// ValidateCreateCompanyRequest validates the create company request
func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if len(req.Handle) > MaxHandleLength {
		return fmt.Errorf("handle must be at most %d characters", MaxHandleLength)
	}
	if !handlePattern.MatchString(req.Handle) {
		return fmt.Errorf("handle must contain only lowercase letters, digits and dashes")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("description is required")
	}

	return validateOptional(req.NumEmployees, req.LogoURL)
}

// ValidateUpdateCompanyRequest validates update company request
func ValidateUpdateCompanyRequest(req *models.UpdateCompanyRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}

	return validateOptional(req.NumEmployees, req.LogoURL)
}

func validateOptional(numEmployees *int, logoURL *string) error {
	if numEmployees != nil && *numEmployees < 0 {
		return fmt.Errorf("numEmployees must be 0 or greater")
	}
	if err := clause.CheckInt32("numEmployees", numEmployees); err != nil {
		return err
	}
	if logoURL != nil {
		u, err := url.ParseRequestURI(*logoURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("logoUrl must be an http(s) URL")
		}
	}
	return nil
}
