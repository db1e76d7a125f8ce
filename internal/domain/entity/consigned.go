package entity

import "time"

// Estados del ciclo de vida de una consignación.
const (
	ConsignedStatusInProgress = "in_progress"
	ConsignedStatusClosed     = "closed"
)

// Consigned registro de vino entregado a un cliente en consignación.
type Consigned struct {
	ID         string
	CustomerID string
	Status     string
	CreatedAt  time.Time
}

// WineOnConsigned línea de consignación: asocia un vino con una consignación
// y lleva el saldo restante (cantidad de botellas).
type WineOnConsigned struct {
	ID          string
	WineID      string
	ConsignedID string
	Balance     int64
	CreatedAt   time.Time
}
