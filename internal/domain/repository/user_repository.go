package repository

import "github.com/puntoventa/minimarket-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	FindByLogin(login string) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	UpdateLastAccess(id int64) error
}
