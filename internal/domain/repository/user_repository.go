package repository

import "github.com/gstbillpro/gstbill-api/internal/domain/entity"

// UserRepository persistence port for application users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
