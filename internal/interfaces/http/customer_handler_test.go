package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Consignado-api/internal/application/usecase"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
	httpapi "github.com/jhoicas/Consignado-api/internal/interfaces/http"
)

// memCustomerRepo puerto de clientes en memoria para probar la capa HTTP de
// punta a punta sin base de datos.
type memCustomerRepo struct {
	customers   map[string]*entity.Customer
	summaryRows []repository.CustomerSummaryRow
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (m *memCustomerRepo) Create(c *entity.Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := m.customers[id]
	if !ok || c.DisabledAt != nil {
		return nil, nil
	}
	return c, nil
}

func (m *memCustomerRepo) FindConflicting(document, email, stateRegistration, excludeID string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.DisabledAt != nil || c.ID == excludeID {
			continue
		}
		if (document != "" && c.Document == document) ||
			(email != "" && c.Email == email) ||
			(stateRegistration != "" && c.StateRegistration == stateRegistration) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) List(nameTerm string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.customers {
		if c.DisabledAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCustomerRepo) Update(c *entity.Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *memCustomerRepo) Disable(id string, at time.Time) error {
	if c, ok := m.customers[id]; ok {
		c.DisabledAt = &at
	}
	return nil
}

func (m *memCustomerRepo) Summary(ctx context.Context) ([]repository.CustomerSummaryRow, error) {
	return m.summaryRows, nil
}

func newTestApp(repo *memCustomerRepo) *fiber.App {
	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(repo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

func customerPayload() map[string]any {
	return map[string]any{
		"name":     "Vinos del Sur",
		"document": "11222333000144",
		"email":    "compras@vinosdelsur.com",
		"address": map[string]any{
			"city":  "Porto Alegre",
			"state": "RS",
		},
	}
}

func TestCustomerCreateEndpoint(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/customers/", customerPayload())
	assert.Equal(t, fiber.StatusCreated, status)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out["customerId"])
}

func TestCustomerCreateEndpoint_Duplicado(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/customers/", customerPayload())
	require.Equal(t, fiber.StatusCreated, status)

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/customers/", customerPayload())
	assert.Equal(t, fiber.StatusConflict, status)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "CONFLICT", out["code"])
}

func TestCustomerCreateEndpoint_PayloadInvalido(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	payload := customerPayload()
	delete(payload, "name")
	status, _ := doJSON(t, app, fiber.MethodPost, "/api/customers/", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCustomerGetEndpoint_NoExiste(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	status, raw := doJSON(t, app, fiber.MethodGet, "/api/customers/00000000-0000-0000-0000-000000000099", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out["code"])
}

// Lista vacía responde 200 con arreglo JSON vacío, no null.
func TestCustomerListEndpoint_Vacia(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	status, raw := doJSON(t, app, fiber.MethodGet, "/api/customers/", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCustomerDeleteEndpoint_BorradoLogico(t *testing.T) {
	app := newTestApp(newMemCustomerRepo())

	status, raw := doJSON(t, app, fiber.MethodPost, "/api/customers/", customerPayload())
	require.Equal(t, fiber.StatusCreated, status)
	var created map[string]string
	require.NoError(t, json.Unmarshal(raw, &created))

	status, _ = doJSON(t, app, fiber.MethodDelete, "/api/customers/"+created["customerId"], nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, fiber.MethodGet, "/api/customers/"+created["customerId"], nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCustomerSummaryEndpoint(t *testing.T) {
	repo := newMemCustomerRepo()
	repo.summaryRows = []repository.CustomerSummaryRow{
		{CustomerID: "c-1", Customer: "Vinos del Sur", ConsignedID: "cons-1", TotalTypes: 2, TotalBalance: 35},
	}
	app := newTestApp(repo)

	status, raw := doJSON(t, app, fiber.MethodGet, "/api/customers/summary", nil)
	assert.Equal(t, fiber.StatusOK, status)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, float64(35), out[0]["totalBalance"])
	assert.Equal(t, float64(2), out[0]["totalTypes"])
}
