package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/pkg/log"
)

const (
	detailKeyPrefix = "company:"
	listKeyPrefix   = "companies:list:"
)

// companyService implements CompanyService. Company details, which join the
// company's jobs, and filtered listings are cached until a company changes.
type companyService struct {
	repo  repository.CompanyRepository
	cache *cache.GenericCacheService
}

// NewCompanyService creates a CompanyService. cacheService may be nil.
func NewCompanyService(repo repository.CompanyRepository, cacheService *cache.GenericCacheService) CompanyService {
	return &companyService{repo: repo, cache: cacheService}
}

// DetailKey is the cache key of a company detail view.
func DetailKey(handle string) string {
	return detailKeyPrefix + handle
}

// ListKey is the cache key of a listing for the compiled filter.
func ListKey(where *clause.Clause) string {
	if where == nil {
		return listKeyPrefix + "all"
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s%q", where.SQL, where.Args)))
	return listKeyPrefix + hex.EncodeToString(sum[:16])
}

func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	log.InfoWithContext(ctx, "Company %s created", company.Handle)
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	where, err := filter.Compile()
	if err != nil {
		return nil, err
	}

	var cached []models.Company
	if err := s.cache.GetCached(ctx, ListKey(where), &cached); err == nil {
		return cached, nil
	}

	companies, err := s.repo.Find(ctx, where)
	if err != nil {
		return nil, err
	}
	if s.cache.IsEnabled() {
		if err := s.cache.CacheData(ctx, ListKey(where), companies); err != nil {
			log.WarnWithContext(ctx, "Failed to cache company listing: %v", err)
		}
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	var cached models.CompanyDetail
	if err := s.cache.GetCached(ctx, DetailKey(handle), &cached); err == nil {
		return &cached, nil
	}

	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	jobs, err := s.repo.FindJobs(ctx, handle)
	if err != nil {
		return nil, err
	}

	detail := &models.CompanyDetail{Company: *company, Jobs: jobs}
	if s.cache.IsEnabled() {
		if err := s.cache.CacheData(ctx, DetailKey(handle), detail); err != nil {
			log.WarnWithContext(ctx, "Failed to cache company %s: %v", handle, err)
		}
	}
	return detail, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	update, err := clause.CompileUpdate(req.Changes(), models.UpdateColumns)
	if err != nil {
		return nil, err
	}

	company, err := s.repo.Update(ctx, handle, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, handle)
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return err
	}
	s.invalidate(ctx, handle)
	log.InfoWithContext(ctx, "Company %s deleted", handle)
	return nil
}

func (s *companyService) invalidate(ctx context.Context, handle string) {
	if !s.cache.IsEnabled() {
		return
	}
	if err := s.cache.InvalidateKey(ctx, DetailKey(handle)); err != nil {
		log.WarnWithContext(ctx, "Failed to invalidate company %s: %v", handle, err)
	}
	s.invalidateListings(ctx)
}

func (s *companyService) invalidateListings(ctx context.Context) {
	if !s.cache.IsEnabled() {
		return
	}
	if err := s.cache.InvalidatePattern(ctx, listKeyPrefix+"*"); err != nil {
		log.WarnWithContext(ctx, "Failed to invalidate company listings: %v", err)
	}
}
