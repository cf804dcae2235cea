package entity

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuario del back-office (tabla usuario).
type User struct {
	ID           int64
	Login        string
	Name         string // nombre
	Email        string
	PasswordHash string
	Role         string // rol
	Active       bool
}
