package models

// User is the identity returned by the auth service on login and verify.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

const RoleAdmin = "admin"

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
