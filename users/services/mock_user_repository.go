package services

import (
	"context"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/users/models"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockUserRepository) Create(ctx context.Context, user *models.UserRecord) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// FindCredentials mocks the FindCredentials method
func (m *MockUserRepository) FindCredentials(ctx context.Context, username string) (*models.UserRecord, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserRecord), args.Error(1)
}

// Find mocks the Find method
func (m *MockUserRepository) Find(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// FindByUsername mocks the FindByUsername method
func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// FindApplications mocks the FindApplications method
func (m *MockUserRepository) FindApplications(ctx context.Context, username string) ([]int, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// Update mocks the Update method
func (m *MockUserRepository) Update(ctx context.Context, username string, update *clause.Update) (*models.User, error) {
	args := m.Called(ctx, username, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockUserRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// Apply mocks the Apply method
func (m *MockUserRepository) Apply(ctx context.Context, username string, jobID int) error {
	args := m.Called(ctx, username, jobID)
	return args.Error(0)
}

// WithSnapshot mocks the WithSnapshot method
func (m *MockUserRepository) WithSnapshot(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Get(0).(error)
	}
	return fn(ctx)
}
