package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Consignado-api/internal/application/dto"
	"github.com/jhoicas/Consignado-api/internal/domain"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

// Costo bcrypt heredado del sistema original; los hashes existentes fueron
// generados con este factor.
const passwordHashCost = 6

// UserUseCase reglas de negocio para usuarios: unicidad por email y hash de
// credenciales antes de persistir.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. Email duplicado falla con conflicto sin llamar a la
// escritura; el password se reemplaza por su hash bcrypt antes de persistir.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		CustomerID:   in.CustomerID,
		Roles:        rolesFromIDs(in.RoleIDs),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{UserID: user.ID}, nil
}

// Get obtiene un usuario con roles aplanados y, si corresponde, el cliente
// asociado con la lista plana de ids de sus consignaciones.
func (uc *UserUseCase) Get(id string) (*dto.UserDetailsResponse, error) {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toUserDetails(row), nil
}

// List lista usuarios proyectados con roles y cliente asociado.
func (uc *UserUseCase) List(nameTerm string) ([]dto.UserListItem, error) {
	rows, err := uc.repo.List(nameTerm)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserListItem, 0, len(rows))
	for i := range rows {
		out = append(out, toUserListItem(&rows[i]))
	}
	return out, nil
}

// Update actualiza un usuario. Unicidad de email excluyendo el propio id
// antes del chequeo de existencia (conflicto gana sobre no-encontrado).
// Password vacío conserva el hash almacenado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrEmailAlreadyExists
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	user := &entity.User{
		ID:         id,
		Email:      in.Email,
		Name:       in.Name,
		CustomerID: in.CustomerID,
		Roles:      rolesFromIDs(in.RoleIDs),
		UpdatedAt:  &now,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return &dto.UpdateUserResponse{UpdatedUserID: id}, nil
}

// Delete elimina un usuario (borrado físico) tras verificar existencia.
func (uc *UserUseCase) Delete(id string) error {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// rolesFromIDs construye la relación de roles a partir de ids. Devuelve nil
// para entrada nil (en updates significa "no tocar los vínculos").
func rolesFromIDs(ids []string) []entity.Role {
	if ids == nil {
		return nil
	}
	roles := make([]entity.Role, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, entity.Role{ID: id})
	}
	return roles
}

// toRoleResponses aplana la relación de roles a {id, name}.
func toRoleResponses(roles []entity.Role) []dto.RoleResponse {
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return out
}

// toUserDetails proyecta la fila de detalle al DTO: roles planos y cliente
// asociado con la lista de ids de consignación.
func toUserDetails(row *repository.UserDetailRow) *dto.UserDetailsResponse {
	out := &dto.UserDetailsResponse{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Roles:     toRoleResponses(row.Roles),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Customer != nil {
		out.Customer = &dto.UserCustomerResponse{
			ID:        row.Customer.ID,
			Name:      row.Customer.Name,
			Consigned: row.ConsignedIDs,
		}
	}
	return out
}

func toUserListItem(row *repository.UserListRow) dto.UserListItem {
	item := dto.UserListItem{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		Roles:     toRoleResponses(row.Roles),
	}
	if row.Customer != nil {
		item.Customer = &dto.UserCustomerResponse{ID: row.Customer.ID, Name: row.Customer.Name}
	}
	return item
}
