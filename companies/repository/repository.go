// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/clause"
)

// CompanyRepository defines the company-specific database operations.
type CompanyRepository interface {
	// Create inserts a company. A taken handle or name yields ErrCompanyAlreadyExists.
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// Find lists companies ordered by name. A nil filter returns every company.
	Find(ctx context.Context, filter *clause.Clause) ([]models.Company, error)

	// FindByHandle retrieves a company by its handle.
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// FindJobs lists the jobs of a company ordered by id.
	FindJobs(ctx context.Context, handle string) ([]models.JobSummary, error)

	// Update applies a compiled partial update and returns the updated row.
	Update(ctx context.Context, handle string, update *clause.Update) (*models.Company, error)

	// Delete removes a company and, through the foreign key, its jobs.
	Delete(ctx context.Context, handle string) error
}
