package services

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error)
	UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
}
