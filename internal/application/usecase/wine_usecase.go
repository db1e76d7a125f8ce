package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Consignado-api/internal/application/dto"
	"github.com/jhoicas/Consignado-api/internal/domain"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

// WineUseCase casos de uso CRUD para vinos. El precio entra y sale en unidad
// mayor (reales) y se persiste en centavos.
type WineUseCase struct {
	repo repository.WineRepository
}

// NewWineUseCase construye el caso de uso.
func NewWineUseCase(repo repository.WineRepository) *WineUseCase {
	return &WineUseCase{repo: repo}
}

// Create crea un vino; el precio se convierte a centavos antes de persistir.
func (uc *WineUseCase) Create(in dto.CreateWineRequest) (*dto.CreateWineResponse, error) {
	wine := &entity.Wine{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Harvest:    in.Harvest,
		Type:       in.Type,
		PriceCents: entity.PriceFromAmount(in.Price),
		Producer:   in.Producer,
		Country:    in.Country,
		Size:       in.Size,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(wine); err != nil {
		return nil, err
	}
	return &dto.CreateWineResponse{WineID: wine.ID}, nil
}

// Get obtiene un vino por ID con el precio en unidad mayor.
func (uc *WineUseCase) Get(id string) (*dto.WineResponse, error) {
	wine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wine == nil {
		return nil, domain.ErrNotFound
	}
	return toWineResponse(wine), nil
}

// GetDetails obtiene el vino con sus líneas de consignación en curso (de
// clientes activos), pasadas sin transformar bajo wineOnConsigned.
func (uc *WineUseCase) GetDetails(id string) (*dto.WineDetailsResponse, error) {
	row, err := uc.repo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	items := make([]dto.WineConsignedItemResponse, 0, len(row.WineOnConsigned))
	for _, it := range row.WineOnConsigned {
		items = append(items, dto.WineConsignedItemResponse{
			ID:           it.ID,
			ConsignedID:  it.ConsignedID,
			CustomerID:   it.CustomerID,
			CustomerName: it.CustomerName,
			Balance:      it.Balance,
		})
	}
	return &dto.WineDetailsResponse{
		WineResponse:    *toWineResponse(&row.Wine),
		WineOnConsigned: items,
	}, nil
}

// List lista vinos por nombre, más recientes primero, tope de 10 filas.
func (uc *WineUseCase) List(nameTerm string) ([]*dto.WineResponse, error) {
	list, err := uc.repo.List(nameTerm)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WineResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWineResponse(w))
	}
	return out, nil
}

// Update actualiza un vino tras verificar existencia; devuelve el id que
// reporta la capa de persistencia.
func (uc *WineUseCase) Update(id string, in dto.UpdateWineRequest) (*dto.UpdateWineResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	wine := &entity.Wine{
		ID:         id,
		Name:       in.Name,
		Harvest:    in.Harvest,
		Type:       in.Type,
		PriceCents: entity.PriceFromAmount(in.Price),
		Producer:   in.Producer,
		Country:    in.Country,
		Size:       in.Size,
		CreatedAt:  current.CreatedAt,
		UpdatedAt:  &now,
	}
	updatedID, err := uc.repo.Update(wine)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateWineResponse{WineID: updatedID}, nil
}

// Metrics delega la consulta agregada paginada (saldo por vino y cliente,
// total de grupos por window function). Offset = (page-1) * pageSize.
func (uc *WineUseCase) Metrics(ctx context.Context, in dto.WineMetricsRequest) (*dto.WineMetricsResponse, error) {
	in.Defaults()
	rows, err := uc.repo.Metrics(ctx, repository.WineMetricsQuery{
		Term:   in.SearchTerm,
		Limit:  in.PageSize,
		Offset: (in.Page - 1) * in.PageSize,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.WineMetricsItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WineMetricsItem{
			WineID:       r.WineID,
			Wine:         r.Wine,
			Customer:     r.Customer,
			TotalBalance: r.TotalBalance,
			Total:        r.Total,
		})
	}
	return &dto.WineMetricsResponse{Items: items}, nil
}

// Delete elimina un vino (borrado físico). Sin re-chequeo de existencia más
// allá de lo que reporte la persistencia.
func (uc *WineUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWineResponse(w *entity.Wine) *dto.WineResponse {
	if w == nil {
		return nil
	}
	return &dto.WineResponse{
		ID:        w.ID,
		Name:      w.Name,
		Harvest:   w.Harvest,
		Type:      w.Type,
		Price:     w.PriceAmount(),
		Producer:  w.Producer,
		Country:   w.Country,
		Size:      w.Size,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
