package services

import (
	"context"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock implementation of JobRepository for testing
type MockJobRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

// Find mocks the Find method
func (m *MockJobRepository) Find(ctx context.Context, filter *clause.Clause) ([]models.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockJobRepository) FindByID(ctx context.Context, id int) (*models.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetail), args.Error(1)
}

// Update mocks the Update method
func (m *MockJobRepository) Update(ctx context.Context, id int, update *clause.Update) (*models.Job, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockJobRepository) Delete(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
