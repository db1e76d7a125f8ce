package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consignado-api/internal/application/usecase"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

type fakeReportGenerator struct {
	rows []repository.CustomerSummaryRow
	out  []byte
	err  error
}

func (f *fakeReportGenerator) GenerateSummaryPDF(ctx context.Context, rows []repository.CustomerSummaryRow, generatedAt time.Time) ([]byte, error) {
	f.rows = rows
	return f.out, f.err
}

func TestConsignedSummaryPDF_PasaFilasAlGenerador(t *testing.T) {
	repo := newMockCustomerRepo()
	repo.summaryRows = []repository.CustomerSummaryRow{
		{CustomerID: "c-1", Customer: "Vinos del Sur", ConsignedID: "cons-1", TotalTypes: 2, TotalBalance: 35},
	}
	gen := &fakeReportGenerator{out: []byte("%PDF-")}
	uc := usecase.NewReportUseCase(repo, gen)

	out, err := uc.ConsignedSummaryPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), out)
	require.Len(t, gen.rows, 1)
	assert.Equal(t, int64(35), gen.rows[0].TotalBalance)
}

func TestConsignedSummaryPDF_PropagaErrorDelGenerador(t *testing.T) {
	genErr := errors.New("sin espacio")
	uc := usecase.NewReportUseCase(newMockCustomerRepo(), &fakeReportGenerator{err: genErr})

	_, err := uc.ConsignedSummaryPDF(context.Background())
	assert.ErrorIs(t, err, genErr)
}
