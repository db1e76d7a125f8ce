package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

var _ repository.WineRepository = (*WineRepo)(nil)

const wineColumns = `id, name, harvest, type, price, producer, country, size, created_at, updated_at`

// WineRepo implementación de WineRepository (usable con pool o tx). El precio
// se guarda en centavos (BIGINT); la conversión a unidad mayor es del caso de
// uso.
type WineRepo struct {
	q Querier
}

// NewWineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWineRepository(q Querier) *WineRepo {
	return &WineRepo{q: q}
}

// Create persiste un nuevo vino.
func (r *WineRepo) Create(wine *entity.Wine) error {
	query := `
		INSERT INTO wines (id, name, harvest, type, price, producer, country, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		wine.ID, wine.Name, wine.Harvest, wine.Type, wine.PriceCents,
		wine.Producer, wine.Country, wine.Size, wine.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wine: %w", err)
	}
	return nil
}

// GetByID obtiene un vino por ID.
func (r *WineRepo) GetByID(id string) (*entity.Wine, error) {
	query := `SELECT ` + wineColumns + ` FROM wines WHERE id::text = $1`
	w, err := scanWine(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wine: %w", err)
	}
	return w, nil
}

// GetDetails obtiene el vino junto con sus líneas de consignación en curso de
// clientes activos.
func (r *WineRepo) GetDetails(id string) (*repository.WineDetailRow, error) {
	wine, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wine == nil {
		return nil, nil
	}

	query := `
		SELECT woc.id, woc.consigned_id, co.customer_id, c.name, woc.balance
		FROM wine_on_consigned woc
		JOIN consigned co ON co.id = woc.consigned_id AND co.status = $2
		JOIN customers c  ON c.id = co.customer_id AND c.disabled_at IS NULL
		WHERE woc.wine_id::text = $1
		ORDER BY woc.created_at`
	rows, err := r.q.Query(context.Background(), query, id, entity.ConsignedStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("wine consigned items: %w", err)
	}
	defer rows.Close()

	detail := &repository.WineDetailRow{Wine: *wine, WineOnConsigned: []repository.WineConsignedItem{}}
	for rows.Next() {
		var it repository.WineConsignedItem
		if err := rows.Scan(&it.ID, &it.ConsignedID, &it.CustomerID, &it.CustomerName, &it.Balance); err != nil {
			return nil, fmt.Errorf("scan consigned item: %w", err)
		}
		detail.WineOnConsigned = append(detail.WineOnConsigned, it)
	}
	return detail, rows.Err()
}

// List lista vinos por nombre, más recientes primero, tope WineListLimit.
func (r *WineRepo) List(nameTerm string) ([]*entity.Wine, error) {
	query := `
		SELECT ` + wineColumns + `
		FROM wines
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, nameTerm, repository.WineListLimit)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Wine
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wine: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Update actualiza un vino y devuelve el id reportado por la base.
func (r *WineRepo) Update(wine *entity.Wine) (string, error) {
	query := `
		UPDATE wines SET name = $2, harvest = $3, type = $4, price = $5, producer = $6,
			country = $7, size = $8, updated_at = $9
		WHERE id::text = $1
		RETURNING id`
	var id string
	err := r.q.QueryRow(context.Background(), query,
		wine.ID, wine.Name, wine.Harvest, wine.Type, wine.PriceCents,
		wine.Producer, wine.Country, wine.Size, wine.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("update wine: %w", err)
	}
	return id, nil
}

// Delete elimina un vino; sus líneas de consignación caen por cascade.
func (r *WineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM wines WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wine: %w", err)
	}
	return nil
}

// Metrics consulta agregada paginada: saldo por (vino, cliente) de
// consignaciones en curso de clientes activos, con el total de grupos por
// window function. Filtro opcional por nombre de vino o de cliente.
func (r *WineRepo) Metrics(ctx context.Context, q repository.WineMetricsQuery) ([]repository.WineMetricsRow, error) {
	const query = `
	SELECT
	    w.id::text                    AS wine_id,
	    w.name                        AS wine,
	    c.name                        AS customer,
	    COALESCE(SUM(woc.balance), 0) AS total_balance,
	    COUNT(*) OVER()               AS total
	FROM wines w
	JOIN wine_on_consigned woc ON woc.wine_id = w.id
	JOIN consigned co          ON co.id = woc.consigned_id AND co.status = $4
	JOIN customers c           ON c.id = co.customer_id AND c.disabled_at IS NULL
	WHERE $1 = '' OR w.name ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%'
	GROUP BY w.id, w.name, c.name
	ORDER BY w.name, c.name
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, query, q.Term, q.Limit, q.Offset, entity.ConsignedStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("wines.Metrics: %w", err)
	}
	defer rows.Close()

	var results []repository.WineMetricsRow
	for rows.Next() {
		var row repository.WineMetricsRow
		if err := rows.Scan(&row.WineID, &row.Wine, &row.Customer, &row.TotalBalance, &row.Total); err != nil {
			return nil, fmt.Errorf("wines.Metrics scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func scanWine(row pgx.Row) (*entity.Wine, error) {
	var w entity.Wine
	err := row.Scan(
		&w.ID, &w.Name, &w.Harvest, &w.Type, &w.PriceCents,
		&w.Producer, &w.Country, &w.Size, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
