package entity

import "time"

// User cuenta de acceso (identidad). El rol y los datos del negocio viven en BusinessProfile.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
