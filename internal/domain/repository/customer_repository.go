package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Consignado-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el registro no existe;
// todas las consultas excluyen clientes deshabilitados.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// FindConflicting busca un cliente activo que comparta documento, email o
	// registro estatal con los valores informados (campos vacíos se ignoran).
	// excludeID descarta al propio cliente en updates; vacío en creates.
	FindConflicting(document, email, stateRegistration, excludeID string) (*entity.Customer, error)
	// List filtra por nombre (substring, case-insensitive); término vacío
	// devuelve todos los activos, más recientes primero.
	List(nameTerm string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Disable marca el borrado lógico (disabled_at = at).
	Disable(id string, at time.Time) error
	// Summary agrega, por cliente activo y consignación en curso, los tipos
	// de vino distintos y la suma de saldos de sus líneas.
	Summary(ctx context.Context) ([]CustomerSummaryRow, error)
}

// CustomerSummaryRow fila agregada de la consulta Summary.
type CustomerSummaryRow struct {
	CustomerID   string
	Customer     string
	ConsignedID  string
	TotalTypes   int64
	TotalBalance int64
}
