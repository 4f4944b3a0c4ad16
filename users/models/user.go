package models

import "github.com/qolzam/jobly/internal/database/clause"

// User is the public view of a users row.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// UserRecord is a users row including the password hash.
type UserRecord struct {
	User
	Password string `db:"password"`
}

// UserDetail is a user together with the ids of the jobs they applied to.
type UserDetail struct {
	User
	Jobs []int `json:"jobs"`
}

// CreateUserRequest is the body of POST /users and, without isAdmin, of
// POST /auth/register.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest is the body of PATCH /users/:username.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// UpdateColumns maps request field names to columns where they differ.
var UpdateColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// Changes lists the supplied fields in a fixed order. Password must already
// be hashed.
func (r *UpdateUserRequest) Changes() clause.Changes {
	var changes clause.Changes
	changes = clause.Set(changes, "firstName", r.FirstName)
	changes = clause.Set(changes, "lastName", r.LastName)
	changes = clause.Set(changes, "email", r.Email)
	changes = clause.Set(changes, "password", r.Password)
	changes = clause.Set(changes, "isAdmin", r.IsAdmin)
	return changes
}
