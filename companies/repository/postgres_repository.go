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

	companyErrors "github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/database/postgres"
)

const companyColumns = `handle, name, description, num_employees, logo_url`

// postgresRepository implements CompanyRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created models.Company
	err := r.client.Executor(ctx).GetContext(ctx, &created, query,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyAlreadyExists, company.Handle)
		}
		return nil, wrapError("create company", err)
	}
	return &created, nil
}

func (r *postgresRepository) Find(ctx context.Context, filter *clause.Clause) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	var args []interface{}
	if filter != nil {
		query += ` ` + filter.SQL
		args = filter.Args
	}
	query += ` ORDER BY name`

	companies := []models.Company{}
	if err := r.client.Executor(ctx).SelectContext(ctx, &companies, query, args...); err != nil {
		return nil, wrapError("find companies", err)
	}
	return companies, nil
}

func (r *postgresRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle = $1`

	var company models.Company
	if err := r.client.Executor(ctx).GetContext(ctx, &company, query, handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
		}
		return nil, wrapError("find company", err)
	}
	return &company, nil
}

func (r *postgresRepository) FindJobs(ctx context.Context, handle string) ([]models.JobSummary, error) {
	query := `
		SELECT id, title, salary, equity::float8 AS equity
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id`

	jobs := []models.JobSummary{}
	if err := r.client.Executor(ctx).SelectContext(ctx, &jobs, query, handle); err != nil {
		return nil, wrapError("find company jobs", err)
	}
	return jobs, nil
}

func (r *postgresRepository) Update(ctx context.Context, handle string, update *clause.Update) (*models.Company, error) {
	query := `UPDATE companies SET ` + update.SQL +
		` WHERE handle = ` + update.Next() +
		` RETURNING ` + companyColumns
	args := append(append([]interface{}{}, update.Args...), handle)

	var company models.Company
	if err := r.client.Executor(ctx).GetContext(ctx, &company, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
		}
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyAlreadyExists, postgres.Constraint(err))
		}
		return nil, wrapError("update company", err)
	}
	return &company, nil
}

func (r *postgresRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return wrapError("delete company", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
	}
	return nil
}

func wrapError(op string, err error) error {
	return postgres.WrapError(op, err, companyErrors.ErrInvalidCompanyData, companyErrors.ErrDatabaseOperation)
}
