package validation

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/qolzam/jobly/users/models"
)

// MaxUsernameLength is the width of the username column.
const MaxUsernameLength = 25

const (
	minPasswordLength = 5
	maxPasswordLength = 72
	maxNameLength     = 30
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateCreateUserRequest validates the create user request
func ValidateCreateUserRequest(req *models.CreateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if len(req.Username) == 0 || len(req.Username) > MaxUsernameLength {
		return fmt.Errorf("username must be 1 to %d characters", MaxUsernameLength)
	}
	if !usernamePattern.MatchString(req.Username) {
		return fmt.Errorf("username may contain only letters, digits, '_', '.' and '-'")
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if err := validateName("firstName", req.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", req.LastName); err != nil {
		return err
	}
	return validateEmail(req.Email)
}

// ValidateUpdateUserRequest validates update user request
func ValidateUpdateUserRequest(req *models.UpdateUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.FirstName != nil {
		if err := validateName("firstName", *req.FirstName); err != nil {
			return err
		}
	}
	if req.LastName != nil {
		if err := validateName("lastName", *req.LastName); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return err
		}
	}
	if req.Password != nil {
		return validatePassword(*req.Password)
	}
	return nil
}

func validatePassword(password string) error {
	// bcrypt ignores input past 72 bytes
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("password must be %d to %d characters", minPasswordLength, maxPasswordLength)
	}
	return nil
}

func validateName(field, value string) error {
	if len(value) == 0 || len(value) > maxNameLength {
		return fmt.Errorf("%s must be 1 to %d characters", field, maxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}
