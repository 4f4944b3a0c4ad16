// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/users/models"
)

// UserRepository defines the user-specific database operations.
type UserRepository interface {
	// Create inserts a user whose password is already hashed.
	Create(ctx context.Context, user *models.UserRecord) (*models.User, error)

	// FindCredentials retrieves a user with the password hash.
	FindCredentials(ctx context.Context, username string) (*models.UserRecord, error)

	// Find lists users ordered by username.
	Find(ctx context.Context) ([]models.User, error)

	// FindByUsername retrieves a user.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindApplications lists the ids of the jobs a user applied to.
	FindApplications(ctx context.Context, username string) ([]int, error)

	// Update applies a compiled partial update and returns the updated row.
	Update(ctx context.Context, username string, update *clause.Update) (*models.User, error)

	// Delete removes a user and their applications.
	Delete(ctx context.Context, username string) error

	// Apply records an application of username to jobID.
	Apply(ctx context.Context, username string, jobID int) error

	// WithSnapshot runs fn in a read-only transaction. Calls made with the
	// context passed to fn all see the same committed state.
	WithSnapshot(ctx context.Context, fn func(context.Context) error) error
}
