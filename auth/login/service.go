package login

import (
	"context"
	"fmt"

	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	userServices "github.com/qolzam/jobly/users/services"
)

// Service exchanges credentials for an access token.
type Service struct {
	users  userServices.UserService
	issuer *tokens.Issuer
}

// NewService creates a login service.
func NewService(users userServices.UserService, issuer *tokens.Issuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// Login verifies the credentials and returns a token carrying the user's role.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(types.UserContext{
		Username:   user.Username,
		SystemRole: types.RoleFor(user.IsAdmin),
	})
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", authErrors.ErrTokenIssue, username, err)
	}
	return token, nil
}
