package repository

import (
	"time"

	"github.com/jhoicas/Consignado-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y sus vínculos de rol (user.Roles por ID).
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	// GetByID carga el usuario con roles y, si existe, el cliente asociado
	// con los IDs de sus consignaciones.
	GetByID(id string) (*UserDetailRow, error)
	List(nameTerm string) ([]UserListRow, error)
	// Update reemplaza los campos del usuario. PasswordHash vacío conserva
	// el hash almacenado; user.Roles nil conserva los vínculos de rol.
	Update(user *entity.User) error
	Delete(id string) error
}

// CustomerRef referencia plana al cliente asociado de un usuario.
type CustomerRef struct {
	ID   string
	Name string
}

// UserDetailRow proyección de detalle de usuario con relaciones cargadas.
type UserDetailRow struct {
	ID           string
	Email        string
	Name         string
	CustomerID   string
	Roles        []entity.Role
	Customer     *CustomerRef // nil si no hay cliente asociado
	ConsignedIDs []string     // consignaciones del cliente asociado
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// UserListRow proyección de listado de usuarios.
type UserListRow struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	Roles     []entity.Role
	Customer  *CustomerRef
}
