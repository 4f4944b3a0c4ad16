// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/database/postgres"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
)

const jobColumns = `id, title, salary, equity::float8 AS equity, company_handle`

// postgresRepository implements JobRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs
func NewPostgresRepository(client *postgres.Client) JobRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created models.Job
	err := r.client.Executor(ctx).GetContext(ctx, &created, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", jobErrors.ErrCompanyNotFound, job.CompanyHandle)
		}
		return nil, wrapError("create job", err)
	}
	return &created, nil
}

func (r *postgresRepository) Find(ctx context.Context, filter *clause.Clause) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []interface{}
	if filter != nil {
		query += ` ` + filter.SQL
		args = filter.Args
	}
	query += ` ORDER BY title, id`

	jobs := []models.Job{}
	if err := r.client.Executor(ctx).SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, wrapError("find jobs", err)
	}
	return jobs, nil
}

// jobCompanyRow is one row of the job/company join.
type jobCompanyRow struct {
	models.Job
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	NumEmployees *int    `db:"num_employees"`
	LogoURL      *string `db:"logo_url"`
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*models.JobDetail, error) {
	query := `
		SELECT j.id, j.title, j.salary, j.equity::float8 AS equity, j.company_handle,
		       c.name, c.description, c.num_employees, c.logo_url
		FROM jobs j
		JOIN companies c ON c.handle = j.company_handle
		WHERE j.id = $1`

	var row jobCompanyRow
	if err := r.client.Executor(ctx).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return nil, wrapError("find job", err)
	}

	return &models.JobDetail{
		ID:     row.ID,
		Title:  row.Title,
		Salary: row.Salary,
		Equity: row.Equity,
		Company: models.CompanySummary{
			Handle:       row.CompanyHandle,
			Name:         row.Name,
			Description:  row.Description,
			NumEmployees: row.NumEmployees,
			LogoURL:      row.LogoURL,
		},
	}, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, update *clause.Update) (*models.Job, error) {
	query := `UPDATE jobs SET ` + update.SQL +
		` WHERE id = ` + update.Next() +
		` RETURNING ` + jobColumns
	args := append(append([]interface{}{}, update.Args...), id)

	var job models.Job
	if err := r.client.Executor(ctx).GetContext(ctx, &job, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return nil, wrapError("update job", err)
	}
	return &job, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) (string, error) {
	var handle string
	err := r.client.Executor(ctx).GetContext(ctx, &handle,
		`DELETE FROM jobs WHERE id = $1 RETURNING company_handle`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return "", wrapError("delete job", err)
	}
	return handle, nil
}

func wrapError(op string, err error) error {
	return postgres.WrapError(op, err, jobErrors.ErrInvalidJobData, jobErrors.ErrDatabaseOperation)
}
