package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER" // gestor de sector: ve las notas de su sector
	RoleUser    = "USER"
)

// MasterUserID id reservado del administrador master. Ese usuario no puede eliminarse.
const MasterUserID = "admin-master"

// User representa un usuario del portal.
// Las tags JSON se usan también en el snapshot persistido y en el backup.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // identificador de login, comparación case-insensitive
	PasswordHash string    `json:"passwordHash"` // bcrypt hash, nunca plano en dominio después de persistir
	Role         string    `json:"role"`   // ADMIN, MANAGER, USER
	Sector       string    `json:"sector"` // requerido para MANAGER/USER, irrelevante para ADMIN
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin true si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole true si role pertenece al conjunto conocido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleUser
}
