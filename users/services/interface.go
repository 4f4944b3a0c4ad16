package services

import (
	"context"

	"github.com/qolzam/jobly/users/models"
)

// UserService defines the interface for user operations
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}
