package signup

import userModels "github.com/qolzam/jobly/users/models"

// RegisterRequest is the body of POST /auth/register. Registered users are
// never admins.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *RegisterRequest) toCreateUser() *userModels.CreateUserRequest {
	return &userModels.CreateUserRequest{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
