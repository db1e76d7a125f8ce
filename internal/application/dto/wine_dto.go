package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWineRequest entrada para crear un vino. Price viene en unidad mayor
// (reales con dos decimales); se convierte a centavos antes de persistir.
type CreateWineRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Harvest  int             `json:"harvest" validate:"omitempty,min=1900,max=2100"`
	Type     string          `json:"type" validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price"`
	Producer string          `json:"producer" validate:"omitempty,max=200"`
	Country  string          `json:"country" validate:"omitempty,max=100"`
	Size     string          `json:"size" validate:"omitempty,max=50"`
}

// UpdateWineRequest entrada para actualizar un vino.
type UpdateWineRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Harvest  int             `json:"harvest" validate:"omitempty,min=1900,max=2100"`
	Type     string          `json:"type" validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price"`
	Producer string          `json:"producer" validate:"omitempty,max=200"`
	Country  string          `json:"country" validate:"omitempty,max=100"`
	Size     string          `json:"size" validate:"omitempty,max=50"`
}

// CreateWineResponse id generado al crear.
type CreateWineResponse struct {
	WineID string `json:"wineId"`
}

// UpdateWineResponse id reportado por la capa de persistencia al actualizar.
type UpdateWineResponse struct {
	WineID string `json:"wineId"`
}

// WineResponse salida de un vino con precio en unidad mayor.
type WineResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Harvest   int             `json:"harvest,omitempty"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Producer  string          `json:"producer,omitempty"`
	Country   string          `json:"country,omitempty"`
	Size      string          `json:"size,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// WineConsignedItemResponse línea de consignación en curso asociada al vino.
type WineConsignedItemResponse struct {
	ID           string `json:"id"`
	ConsignedID  string `json:"consignedId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Balance      int64  `json:"balance"`
}

// WineDetailsResponse vino con sus líneas de consignación, sin transformar.
type WineDetailsResponse struct {
	WineResponse
	WineOnConsigned []WineConsignedItemResponse `json:"wineOnConsigned"`
}

// WineMetricsRequest consulta paginada de métricas de consignación.
type WineMetricsRequest struct {
	Page       int    `query:"page" validate:"omitempty,min=1"`
	PageSize   int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
	SearchTerm string `query:"searchTerm" validate:"omitempty,max=200"`
}

// Defaults aplica página 1 y tamaño 10 cuando no vienen informados.
func (r *WineMetricsRequest) Defaults() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = 10
	}
}

// WineMetricsItem fila agregada de métricas (saldo por vino y cliente).
type WineMetricsItem struct {
	WineID       string `json:"wineId"`
	Wine         string `json:"wine"`
	Customer     string `json:"customer"`
	TotalBalance int64  `json:"totalBalance"`
	Total        int64  `json:"total"`
}

// WineMetricsResponse items de la consulta agregada, tal cual la devuelve la
// capa de persistencia.
type WineMetricsResponse struct {
	Items []WineMetricsItem `json:"items"`
}
