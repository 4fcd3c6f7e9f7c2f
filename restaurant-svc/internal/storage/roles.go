package storage

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

func (r *PostgresRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *PostgresRepository) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	var role domain.Role
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, created_at FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *PostgresRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, created_at FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *PostgresRepository) CreateRole(ctx context.Context, role *domain.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO roles (id, name) VALUES ($1, $2) RETURNING created_at`,
		role.ID, role.Name,
	).Scan(&role.CreatedAt)
	return translate(err)
}
