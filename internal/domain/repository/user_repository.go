package repository

import (
	"time"

	"github.com/myfoodtruck/pos-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByUsernameOrEmail busca por cualquiera de los dos identificadores (recuperación de clave).
	GetByUsernameOrEmail(usernameOrEmail string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// SetResetCode guarda el código temporal de recuperación y su expiración.
	SetResetCode(userID, code string, expires time.Time) error
	// UpdatePasswordAndClearReset cambia el hash y borra el código temporal en una sola operación.
	UpdatePasswordAndClearReset(userID, passwordHash string) error
}
