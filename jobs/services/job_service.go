package services

import (
	"context"

	companyServices "github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
)

// jobService implements JobService. Writes evict the cached detail view of
// the owning company, which lists its jobs.
type jobService struct {
	repo  repository.JobRepository
	cache *cache.GenericCacheService
}

// NewJobService creates a JobService. cacheService may be nil.
func NewJobService(repo repository.JobRepository, cacheService *cache.GenericCacheService) JobService {
	return &jobService{repo: repo, cache: cacheService}
}

func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCompany(ctx, job.CompanyHandle)
	log.InfoWithContext(ctx, "Job %d created for %s", job.ID, job.CompanyHandle)
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	where, err := filter.Compile()
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, where)
}

func (s *jobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *jobService) UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	update, err := clause.CompileUpdate(req.Changes(), nil)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateCompany(ctx, job.CompanyHandle)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	handle, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.invalidateCompany(ctx, handle)
	log.InfoWithContext(ctx, "Job %d deleted", id)
	return nil
}

func (s *jobService) invalidateCompany(ctx context.Context, handle string) {
	if !s.cache.IsEnabled() || handle == "" {
		return
	}
	if err := s.cache.InvalidateKey(ctx, companyServices.DetailKey(handle)); err != nil {
		log.WarnWithContext(ctx, "Failed to invalidate company %s: %v", handle, err)
	}
}
