package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Centavos por unidad monetaria. El precio se persiste en unidad menor
// (entero no negativo) y se expone en unidad mayor (decimal).
var centsPerUnit = decimal.NewFromInt(100)

// Wine representa un vino del catálogo. PriceCents guarda el precio en
// centavos; la conversión hacia/desde reales vive en PriceFromAmount y
// PriceAmount.
type Wine struct {
	ID         string
	Name       string
	Harvest    int // año de cosecha, 0 = no informado
	Type       string
	PriceCents int64
	Producer   string
	Country    string
	Size       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// PriceFromAmount convierte un precio en unidad mayor (ej. 59.90) a centavos.
// Redondeo a medio centavo hacia arriba; los precios nunca son negativos, así
// que Round (half away from zero) equivale a half-up.
func PriceFromAmount(amount decimal.Decimal) int64 {
	return amount.Mul(centsPerUnit).Round(0).IntPart()
}

// PriceAmount devuelve el precio en unidad mayor (59.90 para 5990 centavos).
func (w *Wine) PriceAmount() decimal.Decimal {
	return decimal.NewFromInt(w.PriceCents).Div(centsPerUnit)
}
