package repository

import (
	"context"

	"github.com/jhoicas/Consignado-api/internal/domain/entity"
)

// Máximo de filas del listado de vinos.
const WineListLimit = 10

// WineRepository define el puerto de persistencia para Wine (DIP).
type WineRepository interface {
	Create(wine *entity.Wine) error
	GetByID(id string) (*entity.Wine, error)
	// GetDetails carga el vino con sus líneas de consignación en curso de
	// clientes activos.
	GetDetails(id string) (*WineDetailRow, error)
	// List filtra por nombre, más recientes primero, tope WineListLimit.
	List(nameTerm string) ([]*entity.Wine, error)
	// Update persiste y devuelve el id reportado por la base (RETURNING).
	Update(wine *entity.Wine) (string, error)
	Delete(id string) error
	// Metrics consulta agregada paginada: saldo sumado por vino y cliente,
	// con total de grupos vía window function.
	Metrics(ctx context.Context, q WineMetricsQuery) ([]WineMetricsRow, error)
}

// WineConsignedItem línea de consignación asociada a un vino.
type WineConsignedItem struct {
	ID           string
	ConsignedID  string
	CustomerID   string
	CustomerName string
	Balance      int64
}

// WineDetailRow vino con sus líneas de consignación en curso.
type WineDetailRow struct {
	Wine            entity.Wine
	WineOnConsigned []WineConsignedItem
}

// WineMetricsQuery parámetros de la consulta de métricas.
type WineMetricsQuery struct {
	Term   string // opcional: nombre de vino o de cliente
	Limit  int
	Offset int
}

// WineMetricsRow fila agregada: saldo por (vino, cliente). Total repite el
// conteo de grupos de toda la consulta (COUNT(*) OVER()).
type WineMetricsRow struct {
	WineID       string
	Wine         string
	Customer     string
	TotalBalance int64
	Total        int64
}
