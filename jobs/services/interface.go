package services

import (
	"context"

	"github.com/qolzam/jobly/jobs/models"
)

// JobService defines the interface for job operations
type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.JobDetail, error)
	UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}
