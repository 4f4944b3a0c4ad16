package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	companyErrors "github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newCacheService(t *testing.T) *cache.GenericCacheService {
	t.Helper()
	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { c.Close() })
	return cache.NewGenericCacheService(c, "test", time.Minute)
}

func TestCreateCompany(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo, nil)

	req := &models.CreateCompanyRequest{Handle: "new", Name: "New", Description: "d", NumEmployees: intPtr(10)}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Company) bool {
		return c.Handle == "new" && *c.NumEmployees == 10
	})).Return(&models.Company{Handle: "new", Name: "New", Description: "d", NumEmployees: intPtr(10)}, nil)

	company, err := svc.CreateCompany(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "new", company.Handle)
	repo.AssertExpectations(t)
}

func TestListCompanies(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewCompanyService(repo, nil)
		repo.On("Find", mock.Anything, (*clause.Clause)(nil)).Return([]models.Company{{Handle: "c1"}}, nil)

		companies, err := svc.ListCompanies(context.Background(), models.CompanyFilter{})
		require.NoError(t, err)
		assert.Len(t, companies, 1)
		repo.AssertExpectations(t)
	})

	t.Run("compiled filter", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewCompanyService(repo, nil)
		expected := &clause.Clause{
			SQL:  "WHERE name ILIKE $1 AND num_employees > $2 AND num_employees < $3",
			Args: []any{"ba%", "200", "500"},
		}
		repo.On("Find", mock.Anything, expected).Return([]models.Company{}, nil)

		_, err := svc.ListCompanies(context.Background(), models.CompanyFilter{
			NameLike:     strPtr("ba"),
			MinEmployees: intPtr(200),
			MaxEmployees: intPtr(500),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid range never reaches the repository", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewCompanyService(repo, nil)

		_, err := svc.ListCompanies(context.Background(), models.CompanyFilter{
			MinEmployees: intPtr(500),
			MaxEmployees: intPtr(200),
		})
		assert.ErrorIs(t, err, clause.ErrInvalidRange)
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	t.Run("value wider than the column never reaches the repository", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewCompanyService(repo, nil)

		var filter models.CompanyFilter
		require.NoError(t, parser.QueryValues(url.Values{"minEmployees": {"99999999999"}}, &filter))

		_, err := svc.ListCompanies(context.Background(), filter)
		assert.ErrorIs(t, err, clause.ErrOutOfRange)
		assert.True(t, clause.IsValidation(err))
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})
}

func TestListCompanies_CachedUntilCompanyChanges(t *testing.T) {
	repo := new(MockCompanyRepository)
	cacheService := newCacheService(t)
	svc := NewCompanyService(repo, cacheService)
	ctx := context.Background()
	filter := models.CompanyFilter{NameLike: strPtr("c")}

	repo.On("Find", mock.Anything, mock.Anything).Return([]models.Company{{Handle: "c1"}}, nil).Once()
	first, err := svc.ListCompanies(ctx, filter)
	require.NoError(t, err)
	second, err := svc.ListCompanies(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "Find", 1)

	repo.On("Create", mock.Anything, mock.Anything).Return(&models.Company{Handle: "c2"}, nil)
	_, err = svc.CreateCompany(ctx, &models.CreateCompanyRequest{Handle: "c2", Name: "C2", Description: "d"})
	require.NoError(t, err)

	var cached []models.Company
	where, err := filter.Compile()
	require.NoError(t, err)
	assert.ErrorIs(t, cacheService.GetCached(ctx, ListKey(where), &cached), cache.ErrKeyNotFound)

	repo.On("Find", mock.Anything, mock.Anything).Return([]models.Company{{Handle: "c1"}, {Handle: "c2"}}, nil).Once()
	third, err := svc.ListCompanies(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	repo.AssertNumberOfCalls(t, "Find", 2)
}

func TestListKey(t *testing.T) {
	a := ListKey(&clause.Clause{SQL: "WHERE name ILIKE $1", Args: []any{"a%"}})
	b := ListKey(&clause.Clause{SQL: "WHERE name ILIKE $1", Args: []any{"b%"}})

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ListKey(&clause.Clause{SQL: "WHERE name ILIKE $1", Args: []any{"a%"}}))
	assert.Equal(t, "companies:list:all", ListKey(nil))
}

func TestGetCompany_Caches(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo, newCacheService(t))
	ctx := context.Background()

	repo.On("FindByHandle", mock.Anything, "c1").Return(&models.Company{Handle: "c1", Name: "C1"}, nil).Once()
	repo.On("FindJobs", mock.Anything, "c1").Return([]models.JobSummary{{ID: 1, Title: "J1"}}, nil).Once()

	first, err := svc.GetCompany(ctx, "c1")
	require.NoError(t, err)
	second, err := svc.GetCompany(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "J1", second.Jobs[0].Title)
	repo.AssertExpectations(t)
}

func TestGetCompany_NotFound(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo, nil)
	repo.On("FindByHandle", mock.Anything, "nope").Return(nil, companyErrors.ErrCompanyNotFound)

	_, err := svc.GetCompany(context.Background(), "nope")
	assert.ErrorIs(t, err, companyErrors.ErrCompanyNotFound)
	repo.AssertNotCalled(t, "FindJobs", mock.Anything, mock.Anything)
}

func TestUpdateCompany(t *testing.T) {
	t.Run("compiles changes and invalidates cache", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		cacheService := newCacheService(t)
		svc := NewCompanyService(repo, cacheService)
		ctx := context.Background()
		require.NoError(t, cacheService.CacheData(ctx, DetailKey("c1"), models.CompanyDetail{}))

		expected := &clause.Update{SQL: "name = $1, num_employees = $2", Args: []any{"New", 10}}
		repo.On("Update", mock.Anything, "c1", expected).Return(&models.Company{Handle: "c1", Name: "New"}, nil)

		company, err := svc.UpdateCompany(ctx, "c1", &models.UpdateCompanyRequest{Name: strPtr("New"), NumEmployees: intPtr(10)})
		require.NoError(t, err)
		assert.Equal(t, "New", company.Name)

		var cached models.CompanyDetail
		assert.ErrorIs(t, cacheService.GetCached(ctx, DetailKey("c1"), &cached), cache.ErrKeyNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		repo := new(MockCompanyRepository)
		svc := NewCompanyService(repo, nil)

		_, err := svc.UpdateCompany(context.Background(), "c1", &models.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, clause.ErrNoData)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteCompany(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewCompanyService(repo, nil)
	repo.On("Delete", mock.Anything, "c1").Return(nil)
	repo.On("Delete", mock.Anything, "nope").Return(companyErrors.ErrCompanyNotFound)

	require.NoError(t, svc.DeleteCompany(context.Background(), "c1"))
	assert.ErrorIs(t, svc.DeleteCompany(context.Background(), "nope"), companyErrors.ErrCompanyNotFound)
}
