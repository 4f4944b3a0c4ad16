package signup

import (
	"context"
	"fmt"

	gopass "github.com/nbutton23/zxcvbn-go"
	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	userServices "github.com/qolzam/jobly/users/services"
)

// MinPasswordScore is the lowest accepted zxcvbn score (0-4).
const MinPasswordScore = 2

// Service registers new users.
type Service struct {
	users  userServices.UserService
	issuer *tokens.Issuer
}

// NewService creates a signup service.
func NewService(users userServices.UserService, issuer *tokens.Issuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// CheckPasswordStrength rejects passwords zxcvbn scores below MinPasswordScore.
// The user's own details count as dictionary words.
func CheckPasswordStrength(req *RegisterRequest) error {
	strength := gopass.PasswordStrength(req.Password, []string{req.Username, req.FirstName, req.LastName, req.Email})
	if strength.Score < MinPasswordScore {
		return authErrors.ErrWeakPassword
	}
	return nil
}

// Register creates a non-admin user and returns their token.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	if err := CheckPasswordStrength(req); err != nil {
		return "", err
	}

	user, err := s.users.CreateUser(ctx, req.toCreateUser())
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(types.UserContext{Username: user.Username, SystemRole: types.UserRole})
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", authErrors.ErrTokenIssue, user.Username, err)
	}
	return token, nil
}
