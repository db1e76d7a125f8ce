package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

// ConsignedReportGenerator puerto de generación del PDF de resumen de
// consignaciones (implementado en infraestructura con Maroto).
type ConsignedReportGenerator interface {
	GenerateSummaryPDF(ctx context.Context, rows []repository.CustomerSummaryRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase arma el reporte PDF con el resumen de consignaciones por
// cliente.
type ReportUseCase struct {
	customerRepo repository.CustomerRepository
	generator    ConsignedReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(customerRepo repository.CustomerRepository, generator ConsignedReportGenerator) *ReportUseCase {
	return &ReportUseCase{customerRepo: customerRepo, generator: generator}
}

// ConsignedSummaryPDF genera el PDF del resumen de consignaciones en curso.
func (uc *ReportUseCase) ConsignedSummaryPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.customerRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSummaryPDF(ctx, rows, time.Now())
}
