package entity

import "time"

// Role rol asignable a usuarios (relación muchos-a-muchos).
type Role struct {
	ID   string
	Name string
}

// User usuario del sistema. Puede estar asociado a un Customer (CustomerID
// vacío = sin asociación). PasswordHash es bcrypt, nunca texto plano después
// de persistir.
type User struct {
	ID           string
	Email        string // único entre todos los usuarios
	Name         string
	PasswordHash string
	CustomerID   string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
