package services

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock implementation of CompanyRepository for testing
type MockCompanyRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

// Find mocks the Find method
func (m *MockCompanyRepository) Find(ctx context.Context, filter *clause.Clause) ([]models.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

// FindByHandle mocks the FindByHandle method
func (m *MockCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

// FindJobs mocks the FindJobs method
func (m *MockCompanyRepository) FindJobs(ctx context.Context, handle string) ([]models.JobSummary, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobSummary), args.Error(1)
}

// Update mocks the Update method
func (m *MockCompanyRepository) Update(ctx context.Context, handle string, update *clause.Update) (*models.Company, error) {
	args := m.Called(ctx, handle, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockCompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
