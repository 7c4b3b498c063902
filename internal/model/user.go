package model

// Role values returned by the backend.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "user"
)

// User is the authenticated account.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin reports whether the user may use the admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Credentials is the payload of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload of POST /auth/register.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdate is the payload of PUT /auth/profile.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AuthResult is what login and register hand back.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
