package entity

import (
	"time"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash once the user has been persisted;
// RefreshToken holds at most one active value (single-session model).
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	Password     string
	AvatarURL    string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const MinPasswordLength = 6

// NewUser validates registration input and returns an unpersisted user.
// The password is still plaintext here; the session service hashes it
// before handing the user to the repository.
func NewUser(name, username, email, password string) (User, error) {
	switch {
	case name == "":
		return User{}, apperr.Validation("name is required")
	case username == "":
		return User{}, apperr.Validation("username is required")
	case email == "":
		return User{}, apperr.Validation("email is required")
	case len(password) < MinPasswordLength:
		return User{}, apperr.Validationf("password must be at least %d characters", MinPasswordLength)
	}
	return User{Name: name, Username: username, Email: email, Password: password}, nil
}

// Sanitized returns a copy safe to hand to callers: no hash, no token.
func (u User) Sanitized() User {
	u.Password = ""
	u.RefreshToken = ""
	return u
}
