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
	"strings"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/database/postgres"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
)

const userColumns = `username, first_name, last_name, email, is_admin`

// postgresRepository implements UserRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for users
func NewPostgresRepository(client *postgres.Client) UserRepository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, user *models.UserRecord) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created models.User
	err := r.client.Executor(ctx).GetContext(ctx, &created, query,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserAlreadyExists, user.Username)
		}
		return nil, wrapError("create user", err)
	}
	return &created, nil
}

func (r *postgresRepository) FindCredentials(ctx context.Context, username string) (*models.UserRecord, error) {
	query := `SELECT ` + userColumns + `, password FROM users WHERE username = $1`

	var record models.UserRecord
	if err := r.client.Executor(ctx).GetContext(ctx, &record, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, wrapError("find user", err)
	}
	return &record, nil
}

func (r *postgresRepository) Find(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`
	if err := r.client.Executor(ctx).SelectContext(ctx, &users, query); err != nil {
		return nil, wrapError("find users", err)
	}
	return users, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	if err := r.client.Executor(ctx).GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, wrapError("find user", err)
	}
	return &user, nil
}

func (r *postgresRepository) FindApplications(ctx context.Context, username string) ([]int, error) {
	ids := []int{}
	query := `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`
	if err := r.client.Executor(ctx).SelectContext(ctx, &ids, query, username); err != nil {
		return nil, wrapError("find applications", err)
	}
	return ids, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, update *clause.Update) (*models.User, error) {
	query := `UPDATE users SET ` + update.SQL +
		` WHERE username = ` + update.Next() +
		` RETURNING ` + userColumns
	args := append(append([]interface{}{}, update.Args...), username)

	var user models.User
	if err := r.client.Executor(ctx).GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, wrapError("update user", err)
	}
	return &user, nil
}

func (r *postgresRepository) Delete(ctx context.Context, username string) error {
	result, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return wrapError("delete user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
	}
	return nil
}

func (r *postgresRepository) Apply(ctx context.Context, username string, jobID int) error {
	_, err := r.client.Executor(ctx).ExecContext(ctx,
		`INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
	switch {
	case err == nil:
		return nil
	case postgres.IsUniqueViolation(err):
		return fmt.Errorf("%w: %d", userErrors.ErrAlreadyApplied, jobID)
	case postgres.IsForeignKeyViolation(err):
		if strings.Contains(postgres.Constraint(err), "job_id") {
			return fmt.Errorf("%w: %d", userErrors.ErrJobNotFound, jobID)
		}
		return fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
	default:
		return wrapError("apply to job", err)
	}
}

func (r *postgresRepository) WithSnapshot(ctx context.Context, fn func(context.Context) error) error {
	return r.client.WithTransaction(ctx, postgres.Snapshot, fn)
}

func wrapError(op string, err error) error {
	return postgres.WrapError(op, err, userErrors.ErrInvalidUserData, userErrors.ErrDatabaseOperation)
}
