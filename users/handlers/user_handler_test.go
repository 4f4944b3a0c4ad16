package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/internal/types"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/handlers"
	"github.com/qolzam/jobly/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockUserService implements the UserService interface for testing
type MockUserService struct {
	createUserFunc   func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	authenticateFunc func(ctx context.Context, username, password string) (*models.User, error)
	listUsersFunc    func(ctx context.Context) ([]models.User, error)
	getUserFunc      func(ctx context.Context, username string) (*models.UserDetail, error)
	updateUserFunc   func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	deleteUserFunc   func(ctx context.Context, username string) error
	applyToJobFunc   func(ctx context.Context, username string, jobID int) error
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, username, password)
	}
	return nil, userErrors.ErrInvalidCredentials
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, username)
	}
	return nil, userErrors.ErrUserNotFound
}

func (m *MockUserService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, username, req)
	}
	return &models.User{Username: username}, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, username string) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, username)
	}
	return nil
}

func (m *MockUserService) ApplyToJob(ctx context.Context, username string, jobID int) error {
	if m.applyToJobFunc != nil {
		return m.applyToJobFunc(ctx, username, jobID)
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(user types.UserContext) (string, error) {
	return "token-for-" + user.Username + "-" + user.SystemRole, nil
}

func newTestApp(t *testing.T, svc *MockUserService, current *types.UserContext) *testutil.HTTPHelper {
	h := handlers.NewUserHandler(svc, fakeIssuer{})
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if current != nil {
			c.Locals(types.UserCtxName, *current)
		}
		return c.Next()
	})
	app.Post("/users", h.CreateUser)
	app.Get("/users", h.ListUsers)
	app.Get("/users/:username", h.GetUser)
	app.Patch("/users/:username", h.UpdateUser)
	app.Delete("/users/:username", h.DeleteUser)
	app.Post("/users/:username/jobs/:id", h.ApplyToJob)
	return testutil.NewHTTPHelper(t, app)
}

var adminUser = &types.UserContext{Username: "admin", SystemRole: types.AdminRole}

func TestCreateUser(t *testing.T) {
	svc := &MockUserService{
		createUserFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
			return &models.User{Username: req.Username, FirstName: req.FirstName, IsAdmin: req.IsAdmin}, nil
		},
	}
	helper := newTestApp(t, svc, adminUser)

	var body struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	resp := helper.NewRequest(http.MethodPost, "/users", map[string]interface{}{
		"username": "u-new", "firstName": "First-new", "lastName": "Last-newL",
		"password": "password-new", "email": "new@email.com", "isAdmin": true,
	}).SendJSON(&body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, body.User.IsAdmin)
	assert.Equal(t, "token-for-u-new-admin", body.Token)

	resp = helper.NewRequest(http.MethodPost, "/users", map[string]interface{}{"username": "u-new"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = helper.NewRequest(http.MethodPost, "/users", map[string]interface{}{
		"username": "u-new", "firstName": "F", "lastName": "L", "password": "password-new", "email": "not-an-email",
	}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc := &MockUserService{
		createUserFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
			return nil, userErrors.ErrUserAlreadyExists
		},
	}
	helper := newTestApp(t, svc, adminUser)

	resp := helper.NewRequest(http.MethodPost, "/users", map[string]interface{}{
		"username": "u1", "firstName": "F", "lastName": "L", "password": "password", "email": "u1@email.com",
	}).Send()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetUser(t *testing.T) {
	svc := &MockUserService{
		getUserFunc: func(ctx context.Context, username string) (*models.UserDetail, error) {
			if username != "u1" {
				return nil, userErrors.ErrUserNotFound
			}
			return &models.UserDetail{User: models.User{Username: "u1"}, Jobs: []int{1}}, nil
		},
	}
	helper := newTestApp(t, svc, adminUser)

	var body struct {
		User models.UserDetail `json:"user"`
	}
	resp := helper.NewRequest(http.MethodGet, "/users/u1", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{1}, body.User.Jobs)

	resp = helper.NewRequest(http.MethodGet, "/users/nope", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateUser_IsAdminRequiresAdmin(t *testing.T) {
	var got *models.UpdateUserRequest
	svc := &MockUserService{
		updateUserFunc: func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
			got = req
			return &models.User{Username: username}, nil
		},
	}

	self := &types.UserContext{Username: "u1", SystemRole: types.UserRole}
	helper := newTestApp(t, svc, self)

	resp := helper.NewRequest(http.MethodPatch, "/users/u1", map[string]interface{}{"isAdmin": true}).Send()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, got)

	resp = helper.NewRequest(http.MethodPatch, "/users/u1", map[string]interface{}{"firstName": "New"}).Send()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, got)
	assert.Equal(t, "New", *got.FirstName)

	helper = newTestApp(t, svc, adminUser)
	resp = helper.NewRequest(http.MethodPatch, "/users/u1", map[string]interface{}{"isAdmin": true}).Send()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *got.IsAdmin)

	resp = helper.NewRequest(http.MethodPatch, "/users/u1", map[string]interface{}{"username": "other"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	helper := newTestApp(t, &MockUserService{}, adminUser)

	var body map[string]string
	resp := helper.NewRequest(http.MethodDelete, "/users/u1", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", body["deleted"])
}

func TestApplyToJob(t *testing.T) {
	svc := &MockUserService{
		applyToJobFunc: func(ctx context.Context, username string, jobID int) error {
			switch jobID {
			case 404:
				return userErrors.ErrJobNotFound
			case 409:
				return userErrors.ErrAlreadyApplied
			}
			return nil
		},
	}
	helper := newTestApp(t, svc, adminUser)

	var body map[string]int
	resp := helper.NewRequest(http.MethodPost, "/users/u1/jobs/3", nil).SendJSON(&body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, body["applied"])

	assert.Equal(t, http.StatusNotFound, helper.NewRequest(http.MethodPost, "/users/u1/jobs/404", nil).Send().StatusCode)
	assert.Equal(t, http.StatusConflict, helper.NewRequest(http.MethodPost, "/users/u1/jobs/409", nil).Send().StatusCode)
	assert.Equal(t, http.StatusNotFound, helper.NewRequest(http.MethodPost, "/users/u1/jobs/x", nil).Send().StatusCode)
	assert.Equal(t, http.StatusNotFound, helper.NewRequest(http.MethodPost, "/users/u1/jobs/99999999999", nil).Send().StatusCode)
}
