package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consignado-api/internal/application/usecase"
)

// ReportHandler expone los reportes PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ConsignedSummary GET /api/reports/consigned-summary
func (h *ReportHandler) ConsignedSummary(c *fiber.Ctx) error {
	pdf, err := h.uc.ConsignedSummaryPDF(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="consigned-summary.pdf"`)
	return c.Send(pdf)
}
