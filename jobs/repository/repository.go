// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/jobs/models"
)

// JobRepository defines the job-specific database operations.
type JobRepository interface {
	// Create inserts a job. An unknown company yields ErrCompanyNotFound.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// Find lists jobs ordered by title. A nil filter returns every job.
	Find(ctx context.Context, filter *clause.Clause) ([]models.Job, error)

	// FindByID retrieves a job with its company.
	FindByID(ctx context.Context, id int) (*models.JobDetail, error)

	// Update applies a compiled partial update and returns the updated row.
	Update(ctx context.Context, id int, update *clause.Update) (*models.Job, error)

	// Delete removes a job and returns the handle of the company it belonged to.
	Delete(ctx context.Context, id int) (string, error)
}
