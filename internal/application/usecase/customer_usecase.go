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

// CustomerUseCase reglas de negocio para clientes: unicidad de documento,
// email y registro estatal entre activos, y borrado lógico.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. Si otro cliente activo comparte documento, email o
// registro estatal, falla con conflicto sin llamar a la escritura.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CreateCustomerResponse, error) {
	existing, err := uc.repo.FindConflicting(in.Document, in.Email, in.StateRegistration, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCustomerAlreadyExists
	}
	customer := &entity.Customer{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Document:          in.Document,
		ContactPerson:     in.ContactPerson,
		Email:             in.Email,
		Cellphone:         in.Cellphone,
		BusinessPhone:     in.BusinessPhone,
		StateRegistration: in.StateRegistration,
		Address:           addressFromPayload(in.Address),
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return &dto.CreateCustomerResponse{CustomerID: customer.ID}, nil
}

// GetDetails obtiene un cliente activo por ID, incluida la dirección.
func (uc *CustomerUseCase) GetDetails(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes activos cuyo nombre contiene el término (término vacío
// devuelve todos, más recientes primero). Sin coincidencias devuelve slice
// vacío, nunca error.
func (uc *CustomerUseCase) List(nameTerm string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(nameTerm)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Summary resume, por cliente activo con consignación en curso, los tipos de
// vino distintos y el saldo total. La agregación viene resuelta por la
// consulta; aquí solo se proyecta a la forma de respuesta.
func (uc *CustomerUseCase) Summary(ctx context.Context) ([]dto.CustomerSummaryResponse, error) {
	rows, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerSummaryResponse{
			CustomerID:   r.CustomerID,
			Customer:     r.Customer,
			ConsignedID:  r.ConsignedID,
			TotalTypes:   r.TotalTypes,
			TotalBalance: r.TotalBalance,
		})
	}
	return out, nil
}

// Update actualiza un cliente. La unicidad se revalida excluyendo el propio
// id (los campos sin cambios no auto-conflictúan) y antes del chequeo de
// existencia: conflicto gana sobre no-encontrado.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.UpdateCustomerResponse, error) {
	conflicting, err := uc.repo.FindConflicting(in.Document, in.Email, in.StateRegistration, id)
	if err != nil {
		return nil, err
	}
	if conflicting != nil {
		return nil, domain.ErrCustomerAlreadyExists
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:                id,
		Name:              in.Name,
		Document:          in.Document,
		ContactPerson:     in.ContactPerson,
		Email:             in.Email,
		Cellphone:         in.Cellphone,
		BusinessPhone:     in.BusinessPhone,
		StateRegistration: in.StateRegistration,
		Address:           addressFromPayload(in.Address),
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         &now,
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return &dto.UpdateCustomerResponse{UpdatedCustomerID: id}, nil
}

// Disable deshabilita un cliente (borrado lógico: setea disabled_at, el
// registro se conserva fuera de las consultas activas).
func (uc *CustomerUseCase) Disable(id string) error {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Disable(id, time.Now())
}

func addressFromPayload(in *dto.AddressPayload) *entity.Address {
	if in == nil {
		return nil
	}
	return &entity.Address{
		City:          in.City,
		State:         in.State,
		StreetAddress: in.StreetAddress,
		Number:        in.Number,
		ZipCode:       in.ZipCode,
		Neighborhood:  in.Neighborhood,
	}
}

func toAddressPayload(a *entity.Address) *dto.AddressPayload {
	if a == nil {
		return nil
	}
	return &dto.AddressPayload{
		City:          a.City,
		State:         a.State,
		StreetAddress: a.StreetAddress,
		Number:        a.Number,
		ZipCode:       a.ZipCode,
		Neighborhood:  a.Neighborhood,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		Document:          c.Document,
		ContactPerson:     c.ContactPerson,
		Email:             c.Email,
		Cellphone:         c.Cellphone,
		BusinessPhone:     c.BusinessPhone,
		StateRegistration: c.StateRegistration,
		Address:           toAddressPayload(c.Address),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
