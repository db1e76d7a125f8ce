package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Consignado-api/internal/application/dto"
	"github.com/jhoicas/Consignado-api/internal/application/usecase"
	"github.com/jhoicas/Consignado-api/internal/domain"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

// mockUserRepo implementación en memoria del puerto, replicando el contrato
// de actualización parcial (hash vacío conserva, roles nil conserva).
type mockUserRepo struct {
	users       map[string]*entity.User
	details     map[string]*repository.UserDetailRow
	createCalls int
	updateCalls int
	deleteCalls int
	lastSaved   *entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[string]*entity.User),
		details: make(map[string]*repository.UserDetailRow),
	}
}

func (m *mockUserRepo) Create(user *entity.User) error {
	m.createCalls++
	m.lastSaved = user
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(id string) (*repository.UserDetailRow, error) {
	if row, ok := m.details[id]; ok {
		return row, nil
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &repository.UserDetailRow{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}

func (m *mockUserRepo) List(nameTerm string) ([]repository.UserListRow, error) {
	rows := make([]repository.UserListRow, 0, len(m.users))
	for _, u := range m.users {
		rows = append(rows, repository.UserListRow{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			Roles:     u.Roles,
		})
	}
	return rows, nil
}

func (m *mockUserRepo) Update(user *entity.User) error {
	m.updateCalls++
	m.lastSaved = user
	current := m.users[user.ID]
	merged := *user
	if merged.PasswordHash == "" && current != nil {
		merged.PasswordHash = current.PasswordHash
	}
	if merged.Roles == nil && current != nil {
		merged.Roles = current.Roles
	}
	m.users[user.ID] = &merged
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	m.deleteCalls++
	delete(m.users, id)
	return nil
}

func userRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    "ana@consignado.com",
		Name:     "Ana",
		Password: "secreto123",
	}
}

// El password nunca se persiste en claro: se guarda el hash bcrypt con el
// costo configurado.
func TestUserCreate_HasheaPassword(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(userRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.UserID)

	require.NotNil(t, repo.lastSaved)
	assert.NotEqual(t, "secreto123", repo.lastSaved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastSaved.PasswordHash), []byte("secreto123")))

	cost, err := bcrypt.Cost([]byte(repo.lastSaved.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(userRequest())
	require.NoError(t, err)

	in := userRequest()
	in.Name = "Otra Ana"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, repo.createCalls)
}

// Password vacío en el update conserva el hash almacenado.
func TestUserUpdate_PasswordVacioConservaHash(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(userRequest())
	require.NoError(t, err)
	storedHash := repo.users[created.UserID].PasswordHash

	_, err = uc.Update(created.UserID, dto.UpdateUserRequest{
		Email: "ana@consignado.com",
		Name:  "Ana María",
	})
	require.NoError(t, err)

	// El use case pasa hash vacío al puerto; el almacenado no cambia.
	assert.Empty(t, repo.lastSaved.PasswordHash)
	assert.Equal(t, storedHash, repo.users[created.UserID].PasswordHash)
}

func TestUserUpdate_PasswordNuevoSeRehashea(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(userRequest())
	require.NoError(t, err)
	storedHash := repo.users[created.UserID].PasswordHash

	_, err = uc.Update(created.UserID, dto.UpdateUserRequest{
		Email:    "ana@consignado.com",
		Name:     "Ana",
		Password: "nuevoSecreto",
	})
	require.NoError(t, err)

	updated := repo.users[created.UserID].PasswordHash
	assert.NotEqual(t, storedHash, updated)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated), []byte("nuevoSecreto")))
}

// Conflicto de email gana sobre no-encontrado: update de un id inexistente
// con el email de otro usuario reporta conflicto sin escribir.
func TestUserUpdate_ConflictoAntesQueNotFound(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(userRequest())
	require.NoError(t, err)

	_, err = uc.Update("00000000-0000-0000-0000-000000000099", dto.UpdateUserRequest{
		Email: "ana@consignado.com",
		Name:  "Impostora",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUserUpdate_NotFound(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update("00000000-0000-0000-0000-000000000099", dto.UpdateUserRequest{
		Email: "nadie@consignado.com",
		Name:  "Nadie",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, repo.updateCalls)
}

// El propio email no conflictúa consigo mismo.
func TestUserUpdate_MismoEmailPropio(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(userRequest())
	require.NoError(t, err)

	_, err = uc.Update(created.UserID, dto.UpdateUserRequest{
		Email: "ana@consignado.com",
		Name:  "Ana",
	})
	assert.NoError(t, err)
}

// El detalle aplana roles y adjunta el cliente asociado con los ids de sus
// consignaciones; nunca expone el hash.
func TestUserGet_ProyectaRelaciones(t *testing.T) {
	repo := newMockUserRepo()
	now := time.Now()
	repo.details["u-1"] = &repository.UserDetailRow{
		ID:    "u-1",
		Email: "ana@consignado.com",
		Name:  "Ana",
		Roles: []entity.Role{{ID: "r-1", Name: "admin"}, {ID: "r-2", Name: "seller"}},
		Customer: &repository.CustomerRef{
			ID:   "c-1",
			Name: "Vinos del Sur",
		},
		ConsignedIDs: []string{"cons-1", "cons-2"},
		CreatedAt:    now,
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Get("u-1")
	require.NoError(t, err)
	require.Len(t, out.Roles, 2)
	assert.Equal(t, "admin", out.Roles[0].Name)
	require.NotNil(t, out.Customer)
	assert.Equal(t, "Vinos del Sur", out.Customer.Name)
	assert.Equal(t, []string{"cons-1", "cons-2"}, out.Customer.Consigned)
}

func TestUserGet_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newMockUserRepo())

	_, err := uc.Get("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserList_SinUsuarios(t *testing.T) {
	uc := usecase.NewUserUseCase(newMockUserRepo())

	out, err := uc.List("")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestUserDelete_NotFound(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestUserDelete_BorradoFisico(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(userRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.UserID))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.NotContains(t, repo.users, created.UserID)
}
