package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/testutil"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/handlers"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockJobService implements the JobService interface for testing
type MockJobService struct {
	createJobFunc func(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	listJobsFunc  func(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	getJobFunc    func(ctx context.Context, id int) (*models.JobDetail, error)
	updateJobFunc func(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error)
	deleteJobFunc func(ctx context.Context, id int) error
}

func (m *MockJobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if m.createJobFunc != nil {
		return m.createJobFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockJobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	if m.listJobsFunc != nil {
		return m.listJobsFunc(ctx, filter)
	}
	return []models.Job{}, nil
}

func (m *MockJobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	if m.getJobFunc != nil {
		return m.getJobFunc(ctx, id)
	}
	return nil, jobErrors.ErrJobNotFound
}

func (m *MockJobService) UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	if m.updateJobFunc != nil {
		return m.updateJobFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockJobService) DeleteJob(ctx context.Context, id int) error {
	if m.deleteJobFunc != nil {
		return m.deleteJobFunc(ctx, id)
	}
	return nil
}

func newTestApp(t *testing.T, svc *MockJobService) *testutil.HTTPHelper {
	h := handlers.NewJobHandler(svc)
	app := fiber.New()
	app.Post("/jobs", h.CreateJob)
	app.Get("/jobs", h.ListJobs)
	app.Get("/jobs/:id", h.GetJob)
	app.Patch("/jobs/:id", h.UpdateJob)
	app.Delete("/jobs/:id", h.DeleteJob)
	return testutil.NewHTTPHelper(t, app)
}

func TestCreateJob(t *testing.T) {
	svc := &MockJobService{
		createJobFunc: func(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
			if req.CompanyHandle == "nope" {
				return nil, jobErrors.ErrCompanyNotFound
			}
			return &models.Job{ID: 1, Title: req.Title, Salary: req.Salary, Equity: req.Equity, CompanyHandle: req.CompanyHandle}, nil
		},
	}
	helper := newTestApp(t, svc)

	var body struct {
		Job models.Job `json:"job"`
	}
	resp := helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{
		"title": "new", "salary": 10, "equity": 0.2, "companyHandle": "c1",
	}).SendJSON(&body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "new", body.Job.Title)
	assert.InDelta(t, 0.2, *body.Job.Equity, 1e-9)

	resp = helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{"title": "new", "companyHandle": "nope"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{"title": "new"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = helper.NewRequest(http.MethodPost, "/jobs", map[string]interface{}{"title": "new", "companyHandle": "c1", "equity": 1.5}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListJobs_DecodesFilter(t *testing.T) {
	var got models.JobFilter
	svc := &MockJobService{
		listJobsFunc: func(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
			got = filter
			return []models.Job{{ID: 1}}, nil
		},
	}
	helper := newTestApp(t, svc)

	var body struct {
		Jobs []models.Job `json:"jobs"`
	}
	resp := helper.NewRequest(http.MethodGet, "/jobs?title=eng&minSalary=1000&hasEquity=true", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Jobs, 1)
	require.NotNil(t, got.Title)
	assert.Equal(t, "eng", *got.Title)
	require.NotNil(t, got.MinSalary)
	assert.Equal(t, 1000, *got.MinSalary)
	require.NotNil(t, got.HasEquity)
	assert.True(t, *got.HasEquity)

	resp = helper.NewRequest(http.MethodGet, "/jobs?companyHandle=c1", nil).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetJob(t *testing.T) {
	svc := &MockJobService{
		getJobFunc: func(ctx context.Context, id int) (*models.JobDetail, error) {
			if id != 1 {
				return nil, jobErrors.ErrJobNotFound
			}
			return &models.JobDetail{ID: 1, Title: "J1", Company: models.CompanySummary{Handle: "c1"}}, nil
		},
	}
	helper := newTestApp(t, svc)

	var body struct {
		Job models.JobDetail `json:"job"`
	}
	resp := helper.NewRequest(http.MethodGet, "/jobs/1", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "c1", body.Job.Company.Handle)

	resp = helper.NewRequest(http.MethodGet, "/jobs/2", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = helper.NewRequest(http.MethodGet, "/jobs/abc", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobIDWiderThanColumn(t *testing.T) {
	called := false
	svc := &MockJobService{
		getJobFunc: func(ctx context.Context, id int) (*models.JobDetail, error) {
			called = true
			return nil, jobErrors.ErrJobNotFound
		},
		deleteJobFunc: func(ctx context.Context, id int) error {
			called = true
			return nil
		},
	}
	helper := newTestApp(t, svc)

	assert.Equal(t, http.StatusNotFound, helper.NewRequest(http.MethodGet, "/jobs/99999999999", nil).Send().StatusCode)
	assert.Equal(t, http.StatusNotFound, helper.NewRequest(http.MethodDelete, "/jobs/2147483648", nil).Send().StatusCode)
	assert.False(t, called)
}

func TestUpdateJob(t *testing.T) {
	svc := &MockJobService{
		updateJobFunc: func(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
			if req.Title == nil && req.Salary == nil && req.Equity == nil {
				return nil, clause.ErrNoData
			}
			return &models.Job{ID: id, Title: *req.Title}, nil
		},
	}
	helper := newTestApp(t, svc)

	var body struct {
		Job models.Job `json:"job"`
	}
	resp := helper.NewRequest(http.MethodPatch, "/jobs/1", map[string]interface{}{"title": "TESTTEST"}).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "TESTTEST", body.Job.Title)

	resp = helper.NewRequest(http.MethodPatch, "/jobs/1", map[string]interface{}{}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = helper.NewRequest(http.MethodPatch, "/jobs/1", map[string]interface{}{"companyHandle": "c2"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteJob(t *testing.T) {
	svc := &MockJobService{
		deleteJobFunc: func(ctx context.Context, id int) error {
			if id == 9 {
				return jobErrors.ErrJobNotFound
			}
			return nil
		},
	}
	helper := newTestApp(t, svc)

	var body map[string]int
	resp := helper.NewRequest(http.MethodDelete, "/jobs/3", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, body["deleted"])

	resp = helper.NewRequest(http.MethodDelete, "/jobs/9", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
