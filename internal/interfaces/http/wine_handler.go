package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Consignado-api/internal/application/dto"
	"github.com/jhoicas/Consignado-api/internal/application/usecase"
)

// WineHandler maneja las peticiones HTTP de vinos.
type WineHandler struct {
	uc *usecase.WineUseCase
}

// NewWineHandler construye el handler.
func NewWineHandler(uc *usecase.WineUseCase) *WineHandler {
	return &WineHandler{uc: uc}
}

// Create POST /api/wines
func (h *WineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWineRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/wines/:id
func (h *WineHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetDetails GET /api/wines/:id/details
func (h *WineHandler) GetDetails(c *fiber.Ctx) error {
	out, err := h.uc.GetDetails(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/wines?searchTerm=
func (h *WineHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("searchTerm"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Metrics GET /api/wines/metrics?page=&pageSize=&searchTerm=
func (h *WineHandler) Metrics(c *fiber.Ctx) error {
	var in dto.WineMetricsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Metrics(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/wines/:id
func (h *WineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWineRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/wines/:id (borrado físico)
func (h *WineHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
