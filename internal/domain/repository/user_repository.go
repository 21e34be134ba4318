package repository

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

// UserRepository defines the persistence contract for accounts, including
// the single stored refresh token per user.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	SaveRefreshToken(userID, token string) error
	GetByRefreshToken(token string) (*entity.User, error)
	RevokeRefreshToken(userID string) error
}
