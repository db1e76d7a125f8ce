package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Consignado-api/internal/domain/entity"
)

func TestPriceFromAmount(t *testing.T) {
	assert.Equal(t, int64(5990), entity.PriceFromAmount(decimal.RequireFromString("59.90")))
	assert.Equal(t, int64(0), entity.PriceFromAmount(decimal.Zero))
	// Fracción de centavo: mitad redondea hacia arriba.
	assert.Equal(t, int64(1100), entity.PriceFromAmount(decimal.RequireFromString("10.995")))
	assert.Equal(t, int64(1099), entity.PriceFromAmount(decimal.RequireFromString("10.994")))
}

func TestPriceAmount(t *testing.T) {
	w := entity.Wine{PriceCents: 5990}
	assert.True(t, w.PriceAmount().Equal(decimal.RequireFromString("59.9")))

	// Ida y vuelta estable para precios con dos decimales.
	cents := entity.PriceFromAmount(decimal.RequireFromString("123.45"))
	round := entity.Wine{PriceCents: cents}
	assert.True(t, round.PriceAmount().Equal(decimal.RequireFromString("123.45")))
}
