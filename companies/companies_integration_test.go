package companies_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies"
	"github.com/qolzam/jobly/companies/handlers"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanies_EndToEnd(t *testing.T) {
	client := testutil.StartPostgres(t)
	cfg, priv := testutil.LoadTestConfig(t, nil)

	memory := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { memory.Close() })
	svc := services.NewCompanyService(
		repository.NewPostgresRepository(client),
		cache.NewGenericCacheService(memory, "it", time.Minute),
	)

	app := fiber.New()
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{CompanyHandler: handlers.NewCompanyHandler(svc)}, cfg)
	helper := testutil.NewHTTPHelper(t, app)
	token := testutil.GenerateTestJWT(t, priv, types.UserContext{Username: "admin", SystemRole: types.AdminRole})

	for _, c := range []map[string]interface{}{
		{"handle": "bakers", "name": "Bakers", "description": "Bread", "numEmployees": 250},
		{"handle": "banks", "name": "Banks", "description": "Money", "numEmployees": 800},
		{"handle": "cars", "name": "Cars", "description": "Wheels", "numEmployees": 300},
	} {
		resp := helper.NewRequest(http.MethodPost, "/companies", c).WithJWTAuth(token).Send()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var list struct {
		Companies []models.Company `json:"companies"`
	}
	resp := helper.NewRequest(http.MethodGet, "/companies?nameLike=ba&minEmployees=200&maxEmployees=500", nil).SendJSON(&list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Companies, 1)
	assert.Equal(t, "bakers", list.Companies[0].Handle)

	var detail struct {
		Company models.CompanyDetail `json:"company"`
	}
	helper.NewRequest(http.MethodGet, "/companies/bakers", nil).SendJSON(&detail)
	assert.Equal(t, "Bread", detail.Company.Description)

	resp = helper.NewRequest(http.MethodPatch, "/companies/bakers", map[string]interface{}{"description": "Cakes"}).
		WithJWTAuth(token).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	helper.NewRequest(http.MethodGet, "/companies/bakers", nil).SendJSON(&detail)
	assert.Equal(t, "Cakes", detail.Company.Description, "detail cache is invalidated on update")

	resp = helper.NewRequest(http.MethodDelete, "/companies/bakers", nil).WithJWTAuth(token).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = helper.NewRequest(http.MethodGet, "/companies/bakers", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
