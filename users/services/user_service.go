package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/qolzam/jobly/internal/database/clause"
	"github.com/qolzam/jobly/internal/pkg/log"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/repository"
	"github.com/qolzam/jobly/users/validation"
	"golang.org/x/crypto/bcrypt"
)

// ServiceConfig holds the settings the user service needs.
type ServiceConfig struct {
	BcryptCost int
}

type userService struct {
	repo   repository.UserRepository
	config ServiceConfig
}

// NewUserService creates a UserService.
func NewUserService(repo repository.UserRepository, config ServiceConfig) UserService {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, config: config}
}

func (s *userService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.UserRecord{
		User: models.User{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			IsAdmin:   req.IsAdmin,
		},
		Password: hashed,
	})
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "User %s created (admin=%t)", user.Username, user.IsAdmin)
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for both unknown users and wrong passwords.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	record, err := s.repo.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			return nil, userErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.Password), []byte(password)); err != nil {
		log.WarnWithContext(ctx, "Failed login for %s", username)
		return nil, userErrors.ErrInvalidCredentials
	}
	return &record.User, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.Find(ctx)
}

// GetUser reads the user and their applications from one snapshot.
func (s *userService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	var detail *models.UserDetail
	err := s.repo.WithSnapshot(ctx, func(txCtx context.Context) error {
		user, err := s.repo.FindByUsername(txCtx, username)
		if err != nil {
			return err
		}
		jobs, err := s.repo.FindApplications(txCtx, username)
		if err != nil {
			return err
		}
		detail = &models.UserDetail{User: *user, Jobs: jobs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	changes := *req
	if req.Password != nil {
		hashed, err := s.hash(*req.Password)
		if err != nil {
			return nil, err
		}
		changes.Password = &hashed
	}

	update, err := clause.CompileUpdate(changes.Changes(), models.UpdateColumns)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, username, update)
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "User %s deleted", username)
	return nil
}

// ApplyToJob reports ErrUserNotFound for a username no row could hold.
func (s *userService) ApplyToJob(ctx context.Context, username string, jobID int) error {
	if len(username) > validation.MaxUsernameLength {
		return userErrors.ErrUserNotFound
	}
	return s.repo.Apply(ctx, username, jobID)
}
