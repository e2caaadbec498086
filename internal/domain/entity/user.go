package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// ValidRole indica si el rol pertenece al conjunto cerrado admin|vendedor.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendedor
}

// User representa un usuario del sistema (administrador o vendedor).
// ResetCode/ResetExpires guardan el código temporal de recuperación de clave;
// vacíos cuando no hay recuperación en curso.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Email        string
	Role         string // admin, vendedor
	ResetCode    string
	ResetExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
