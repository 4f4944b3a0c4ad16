package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	// AccessTokenCookie is the cookie browsers send the token in.
	AccessTokenCookie = "access_token"
	// ClaimKey is the JWT claim that carries the UserContext fields.
	ClaimKey = "claim"
)

// Common Values
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserCtxName is the fiber locals key holding the authenticated UserContext.
const UserCtxName = "user"

// UserContext is the identity carried by a verified token.
type UserContext struct {
	Username   string `json:"username"`
	SystemRole string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u UserContext) IsAdmin() bool {
	return u.SystemRole == AdminRole
}

// CanActAs reports whether the user may act on the account named username.
func (u UserContext) CanActAs(username string) bool {
	return u.IsAdmin() || (u.Username != "" && u.Username == username)
}

// RoleFor returns the system role stored in tokens for the given admin flag.
func RoleFor(isAdmin bool) string {
	if isAdmin {
		return AdminRole
	}
	return UserRole
}
