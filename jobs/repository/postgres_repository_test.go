package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/testutil"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func seed(t *testing.T) (repository.JobRepository, context.Context) {
	client := testutil.StartPostgres(t)
	testutil.MustExec(t, client, `
		INSERT INTO companies (handle, name, num_employees, description)
		VALUES ('c1', 'C1', 1, 'Desc1'), ('c2', 'C2', 2, 'Desc2')`)
	testutil.MustExec(t, client, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ('Job1', 100, 0.1, 'c1'),
		       ('Job2', 200, 0.2, 'c1'),
		       ('Job3', 300, 0, 'c1'),
		       ('Job4', NULL, NULL, 'c2')`)
	return repository.NewPostgresRepository(client), context.Background()
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, ctx := seed(t)

	job, err := repo.Create(ctx, &models.Job{Title: "New", Salary: intPtr(500), Equity: floatPtr(0.05), CompanyHandle: "c2"})
	require.NoError(t, err)
	assert.Positive(t, job.ID)
	assert.InDelta(t, 0.05, *job.Equity, 1e-9)

	_, err = repo.Create(ctx, &models.Job{Title: "Orphan", CompanyHandle: "nope"})
	assert.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)

	_, err = repo.Create(ctx, &models.Job{Title: "Rich", Salary: intPtr(1 << 40), CompanyHandle: "c1"})
	assert.ErrorIs(t, err, jobErrors.ErrInvalidJobData)

	_, err = repo.Create(ctx, &models.Job{Title: "Long", CompanyHandle: strings.Repeat("c", 30)})
	assert.ErrorIs(t, err, jobErrors.ErrInvalidJobData)
}

func TestPostgresRepository_Find(t *testing.T) {
	repo, ctx := seed(t)

	tests := []struct {
		name   string
		filter models.JobFilter
		titles []string
	}{
		{"all", models.JobFilter{}, []string{"Job1", "Job2", "Job3", "Job4"}},
		{"title prefix", models.JobFilter{Title: strPtr("job1")}, []string{"Job1"}},
		{"min salary", models.JobFilter{MinSalary: intPtr(150)}, []string{"Job2", "Job3"}},
		{"has equity", models.JobFilter{HasEquity: boolPtr(true)}, []string{"Job1", "Job2"}},
		{"equity false is ignored", models.JobFilter{HasEquity: boolPtr(false)}, []string{"Job1", "Job2", "Job3", "Job4"}},
		{"combined", models.JobFilter{MinSalary: intPtr(150), HasEquity: boolPtr(true)}, []string{"Job2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, err := tt.filter.Compile()
			require.NoError(t, err)

			jobs, err := repo.Find(ctx, where)
			require.NoError(t, err)

			titles := make([]string, 0, len(jobs))
			for _, j := range jobs {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestPostgresRepository_FindByID(t *testing.T) {
	repo, ctx := seed(t)

	all, err := repo.Find(ctx, nil)
	require.NoError(t, err)

	job, err := repo.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Job1", job.Title)
	assert.Equal(t, "c1", job.Company.Handle)
	assert.Equal(t, "Desc1", job.Company.Description)

	_, err = repo.FindByID(ctx, 0)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}

func TestPostgresRepository_UpdateAndDelete(t *testing.T) {
	repo, ctx := seed(t)

	all, err := repo.Find(ctx, nil)
	require.NoError(t, err)
	id := all[0].ID

	req := models.UpdateJobRequest{Title: strPtr("Renamed"), Equity: floatPtr(0.5)}
	update, err := clause.CompileUpdate(req.Changes(), nil)
	require.NoError(t, err)

	job, err := repo.Update(ctx, id, update)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", job.Title)
	assert.Equal(t, 100, *job.Salary)
	assert.InDelta(t, 0.5, *job.Equity, 1e-9)

	_, err = repo.Update(ctx, 0, update)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)

	handle, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "c1", handle)

	_, err = repo.Delete(ctx, id)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}
