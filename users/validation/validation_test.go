package validation

import (
	"strings"
	"testing"

	"github.com/qolzam/jobly/users/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateUserRequest(t *testing.T) {
	valid := func() *models.CreateUserRequest {
		return &models.CreateUserRequest{
			Username:  "new",
			Password:  "password",
			FirstName: "Test",
			LastName:  "Tester",
			Email:     "test@test.com",
		}
	}
	assert.NoError(t, ValidateCreateUserRequest(valid()))

	tests := map[string]func(r *models.CreateUserRequest){
		"empty username":  func(r *models.CreateUserRequest) { r.Username = "" },
		"long username":   func(r *models.CreateUserRequest) { r.Username = strings.Repeat("u", 26) },
		"spaced username": func(r *models.CreateUserRequest) { r.Username = "a b" },
		"short password":  func(r *models.CreateUserRequest) { r.Password = "abc" },
		"missing first":   func(r *models.CreateUserRequest) { r.FirstName = "" },
		"bad email":       func(r *models.CreateUserRequest) { r.Email = "not-an-email" },
		"named email":     func(r *models.CreateUserRequest) { r.Email = "Test <test@test.com>" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := valid()
			mutate(req)
			assert.Error(t, ValidateCreateUserRequest(req))
		})
	}
}

func TestValidateUpdateUserRequest(t *testing.T) {
	email, short := "bad", "abc"
	assert.NoError(t, ValidateUpdateUserRequest(&models.UpdateUserRequest{}))
	assert.Error(t, ValidateUpdateUserRequest(&models.UpdateUserRequest{Email: &email}))
	assert.Error(t, ValidateUpdateUserRequest(&models.UpdateUserRequest{Password: &short}))
}
