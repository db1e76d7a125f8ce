package dto

import "time"

// AddressPayload dirección embebida (opcional) en requests y responses.
type AddressPayload struct {
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=50"`
	StreetAddress string `json:"streetAddress" validate:"omitempty,max=200"`
	Number        string `json:"number" validate:"omitempty,max=20"`
	ZipCode       string `json:"zipCode" validate:"omitempty,max=20"`
	Neighborhood  string `json:"neighborhood" validate:"omitempty,max=100"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Document          string          `json:"document" validate:"required,min=1,max=50"`
	ContactPerson     string          `json:"contactPerson" validate:"omitempty,max=200"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Cellphone         string          `json:"cellphone" validate:"omitempty,max=30"`
	BusinessPhone     string          `json:"businessPhone" validate:"omitempty,max=30"`
	StateRegistration string          `json:"stateRegistration" validate:"omitempty,max=50"`
	Address           *AddressPayload `json:"address" validate:"omitempty"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (reemplazo de campos).
type UpdateCustomerRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Document          string          `json:"document" validate:"required,min=1,max=50"`
	ContactPerson     string          `json:"contactPerson" validate:"omitempty,max=200"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Cellphone         string          `json:"cellphone" validate:"omitempty,max=30"`
	BusinessPhone     string          `json:"businessPhone" validate:"omitempty,max=30"`
	StateRegistration string          `json:"stateRegistration" validate:"omitempty,max=50"`
	Address           *AddressPayload `json:"address" validate:"omitempty"`
}

// CreateCustomerResponse id generado al crear.
type CreateCustomerResponse struct {
	CustomerID string `json:"customerId"`
}

// UpdateCustomerResponse id del cliente actualizado.
type UpdateCustomerResponse struct {
	UpdatedCustomerID string `json:"updatedCustomerId"`
}

// CustomerResponse salida completa de un cliente (incluye dirección).
type CustomerResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Document          string          `json:"document"`
	ContactPerson     string          `json:"contactPerson,omitempty"`
	Email             string          `json:"email,omitempty"`
	Cellphone         string          `json:"cellphone,omitempty"`
	BusinessPhone     string          `json:"businessPhone,omitempty"`
	StateRegistration string          `json:"stateRegistration,omitempty"`
	Address           *AddressPayload `json:"address,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         *time.Time      `json:"updatedAt,omitempty"`
}

// CustomerSummaryResponse resumen de consignación por cliente: tipos de vino
// distintos y saldo total de la consignación en curso.
type CustomerSummaryResponse struct {
	CustomerID   string `json:"customerId"`
	Customer     string `json:"customer"`
	ConsignedID  string `json:"consignedId"`
	TotalTypes   int64  `json:"totalTypes"`
	TotalBalance int64  `json:"totalBalance"`
}
