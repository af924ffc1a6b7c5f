package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en plano después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
