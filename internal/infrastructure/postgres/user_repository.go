package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Consignado-api/internal/domain"
	"github.com/jhoicas/Consignado-api/internal/domain/entity"
	"github.com/jhoicas/Consignado-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Usa el pool directamente: las escrituras de usuario + vínculos de rol van
// dentro de una transacción.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste el usuario y sus vínculos de rol en una transacción.
func (r *UserRepo) Create(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO users (id, email, name, password_hash, customer_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6)`
	_, err = tx.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CustomerID, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if err := insertRoleLinks(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email (sin relaciones).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(customer_id::text, ''), created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CustomerID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetByID carga el usuario con roles, cliente asociado y los ids de las
// consignaciones de ese cliente.
func (r *UserRepo) GetByID(id string) (*repository.UserDetailRow, error) {
	ctx := context.Background()
	query := `
		SELECT u.id, u.email, u.name, COALESCE(u.customer_id::text, ''), u.created_at, u.updated_at,
		       COALESCE(c.id::text, ''), COALESCE(c.name, '')
		FROM users u
		LEFT JOIN customers c ON c.id = u.customer_id AND c.disabled_at IS NULL
		WHERE u.id::text = $1`
	var row repository.UserDetailRow
	var customerID, customerName string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Email, &row.Name, &row.CustomerID, &row.CreatedAt, &row.UpdatedAt,
		&customerID, &customerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	row.Roles, err = r.userRoles(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	if customerID != "" {
		row.Customer = &repository.CustomerRef{ID: customerID, Name: customerName}
		row.ConsignedIDs, err = r.customerConsignedIDs(ctx, customerID)
		if err != nil {
			return nil, err
		}
	}
	return &row, nil
}

// List lista usuarios con roles y cliente asociado en una sola consulta,
// agrupando las filas del join en memoria.
func (r *UserRepo) List(nameTerm string) ([]repository.UserListRow, error) {
	query := `
		SELECT u.id, u.name, u.email, u.created_at,
		       COALESCE(r.id::text, ''), COALESCE(r.name, ''),
		       COALESCE(c.id::text, ''), COALESCE(c.name, '')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		LEFT JOIN roles r       ON r.id = ur.role_id
		LEFT JOIN customers c   ON c.id = u.customer_id AND c.disabled_at IS NULL
		WHERE $1 = '' OR u.name ILIKE '%' || $1 || '%'
		ORDER BY u.created_at DESC, u.id`
	rows, err := r.pool.Query(context.Background(), query, nameTerm)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []repository.UserListRow
	index := make(map[string]int)
	for rows.Next() {
		var u repository.UserListRow
		var roleID, roleName, customerID, customerName string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &roleID, &roleName, &customerID, &customerName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		i, seen := index[u.ID]
		if !seen {
			u.Roles = []entity.Role{}
			if customerID != "" {
				u.Customer = &repository.CustomerRef{ID: customerID, Name: customerName}
			}
			list = append(list, u)
			i = len(list) - 1
			index[u.ID] = i
		}
		if roleID != "" {
			list[i].Roles = append(list[i].Roles, entity.Role{ID: roleID, Name: roleName})
		}
	}
	return list, rows.Err()
}

// Update actualiza el usuario. password_hash vacío conserva el hash
// almacenado; Roles nil conserva los vínculos, no-nil los reemplaza.
func (r *UserRepo) Update(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE users SET email = $2, name = $3, customer_id = NULLIF($4, '')::uuid,
			password_hash = CASE WHEN $5 = '' THEN password_hash ELSE $5 END,
			updated_at = $6
		WHERE id::text = $1`
	_, err = tx.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.CustomerID, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if user.Roles != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id::text = $1`, user.ID); err != nil {
			return fmt.Errorf("delete role links: %w", err)
		}
		if err := insertRoleLinks(ctx, tx, user.ID, user.Roles); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina el usuario; los vínculos de rol caen por ON DELETE CASCADE.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) userRoles(ctx context.Context, userID string) ([]entity.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id::text = $1
		ORDER BY r.name`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("user roles: %w", err)
	}
	defer rows.Close()
	roles := []entity.Role{}
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *UserRepo) customerConsignedIDs(ctx context.Context, customerID string) ([]string, error) {
	query := `SELECT id FROM consigned WHERE customer_id::text = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer consigned ids: %w", err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan consigned id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertRoleLinks(ctx context.Context, q Querier, userID string, roles []entity.Role) error {
	for _, role := range roles {
		_, err := q.Exec(ctx, `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, role.ID)
		if err != nil {
			return fmt.Errorf("insert role link: %w", err)
		}
	}
	return nil
}
