package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Consignado-api/internal/domain"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, document, contact_person, email, cellphone, business_phone,
	state_registration, city, state, street_address, number, zip_code, neighborhood,
	created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
// Todas las lecturas excluyen clientes con disabled_at seteado.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, document, contact_person, email, cellphone, business_phone,
			state_registration, city, state, street_address, number, zip_code, neighborhood, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	addr := customer.Address
	if addr == nil {
		addr = &entity.Address{}
	}
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Document, customer.ContactPerson, customer.Email,
		customer.Cellphone, customer.BusinessPhone, customer.StateRegistration,
		addr.City, addr.State, addr.StreetAddress, addr.Number, addr.ZipCode, addr.Neighborhood,
		customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustomerAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente activo por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id::text = $1 AND disabled_at IS NULL`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// FindConflicting busca un cliente activo que comparta documento, email o
// registro estatal. Campos vacíos no participan del match; excludeID vacío
// no excluye a nadie.
func (r *CustomerRepo) FindConflicting(document, email, stateRegistration, excludeID string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE disabled_at IS NULL
		  AND ($4 = '' OR id::text <> $4)
		  AND (($1 <> '' AND document = $1)
		    OR ($2 <> '' AND email = $2)
		    OR ($3 <> '' AND state_registration = $3))
		LIMIT 1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, document, email, stateRegistration, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find conflicting customer: %w", err)
	}
	return c, nil
}

// List lista clientes activos por nombre (substring, case-insensitive),
// más recientes primero. Término vacío devuelve todos.
func (r *CustomerRepo) List(nameTerm string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE disabled_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, nameTerm)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, document = $3, contact_person = $4, email = $5,
			cellphone = $6, business_phone = $7, state_registration = $8,
			city = $9, state = $10, street_address = $11, number = $12, zip_code = $13,
			neighborhood = $14, updated_at = $15
		WHERE id::text = $1`
	addr := customer.Address
	if addr == nil {
		addr = &entity.Address{}
	}
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Document, customer.ContactPerson, customer.Email,
		customer.Cellphone, customer.BusinessPhone, customer.StateRegistration,
		addr.City, addr.State, addr.StreetAddress, addr.Number, addr.ZipCode, addr.Neighborhood,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustomerAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Disable marca el borrado lógico: el registro se conserva y queda fuera de
// las consultas activas.
func (r *CustomerRepo) Disable(id string, at time.Time) error {
	query := `UPDATE customers SET disabled_at = $2, updated_at = $2 WHERE id::text = $1 AND disabled_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("disable customer: %w", err)
	}
	return nil
}

// Summary agrega por (cliente activo, consignación en curso): tipos de vino
// distintos y suma de saldos. Tipos repetidos cuentan una sola vez para
// total_types pero suman completo en total_balance.
func (r *CustomerRepo) Summary(ctx context.Context) ([]repository.CustomerSummaryRow, error) {
	const query = `
	SELECT
	    c.id::text                        AS customer_id,
	    c.name                            AS customer,
	    co.id::text                       AS consigned_id,
	    COUNT(DISTINCT w.type)            AS total_types,
	    COALESCE(SUM(woc.balance), 0)     AS total_balance
	FROM customers c
	JOIN consigned co         ON co.customer_id  = c.id AND co.status = $1
	JOIN wine_on_consigned woc ON woc.consigned_id = co.id
	JOIN wines w              ON w.id            = woc.wine_id
	WHERE c.disabled_at IS NULL
	GROUP BY c.id, c.name, co.id
	ORDER BY c.name, co.id`

	rows, err := r.q.Query(ctx, query, entity.ConsignedStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("customers.Summary: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerSummaryRow
	for rows.Next() {
		var row repository.CustomerSummaryRow
		if err := rows.Scan(&row.CustomerID, &row.Customer, &row.ConsignedID, &row.TotalTypes, &row.TotalBalance); err != nil {
			return nil, fmt.Errorf("customers.Summary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// scanCustomer arma la entidad desde una fila; la dirección se materializa
// solo si algún campo viene informado.
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var a entity.Address
	err := row.Scan(
		&c.ID, &c.Name, &c.Document, &c.ContactPerson, &c.Email, &c.Cellphone, &c.BusinessPhone,
		&c.StateRegistration,
		&a.City, &a.State, &a.StreetAddress, &a.Number, &a.ZipCode, &a.Neighborhood,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a != (entity.Address{}) {
		c.Address = &a
	}
	return &c, nil
}
