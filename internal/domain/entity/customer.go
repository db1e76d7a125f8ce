package entity

import "time"

// Address dirección embebida del cliente (opcional).
type Address struct {
	City          string
	State         string
	StreetAddress string
	Number        string
	ZipCode       string
	Neighborhood  string
}

// Customer representa un cliente que recibe vino en consignación.
// La tripleta (Document, Email, StateRegistration) es única entre clientes
// activos cuando el campo viene informado. El borrado es lógico: DisabledAt
// marca el registro como inactivo y lo excluye de las consultas activas.
type Customer struct {
	ID                string
	Name              string
	Document          string // documento fiscal (CNPJ/CPF)
	ContactPerson     string
	Email             string
	Cellphone         string
	BusinessPhone     string
	StateRegistration string
	Address           *Address
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DisabledAt        *time.Time
}
