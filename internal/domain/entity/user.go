package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleConsulta = "consulta"
)

// User representa un usuario de la API (lado de personal, base documental).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
