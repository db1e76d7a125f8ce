package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case antes de persistir).
type CreateUserRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Password   string   `json:"password" validate:"required,min=6"`
	CustomerID string   `json:"customerId" validate:"omitempty,uuid"`
	RoleIDs    []string `json:"roleIds" validate:"omitempty,dive,uuid"`
}

// UpdateUserRequest entrada para actualizar. Password vacío conserva el hash
// almacenado (contrato de actualización parcial).
type UpdateUserRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Password   string   `json:"password" validate:"omitempty,min=6"`
	CustomerID string   `json:"customerId" validate:"omitempty,uuid"`
	RoleIDs    []string `json:"roleIds" validate:"omitempty,dive,uuid"`
}

// CreateUserResponse id generado al crear.
type CreateUserResponse struct {
	UserID string `json:"userId"`
}

// UpdateUserResponse id del usuario actualizado.
type UpdateUserResponse struct {
	UpdatedUserID string `json:"updatedUserId"`
}

// RoleResponse rol aplanado {id, name}.
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserCustomerResponse cliente asociado con sus consignaciones (ids planos).
type UserCustomerResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Consigned []string `json:"consigned,omitempty"`
}

// UserDetailsResponse salida de GET de usuario (sin password).
type UserDetailsResponse struct {
	ID        string                `json:"id"`
	Email     string                `json:"email"`
	Name      string                `json:"name"`
	Roles     []RoleResponse        `json:"roles"`
	Customer  *UserCustomerResponse `json:"customer,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt *time.Time            `json:"updatedAt,omitempty"`
}

// UserListItem fila del listado de usuarios.
type UserListItem struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	CreatedAt time.Time             `json:"createdAt"`
	Roles     []RoleResponse        `json:"roles"`
	Customer  *UserCustomerResponse `json:"customer,omitempty"`
}
