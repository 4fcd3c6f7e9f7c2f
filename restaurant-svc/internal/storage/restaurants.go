package storage

import (
	"context"
	"database/sql"
	"fmt"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

func (r *PostgresRepository) GetRestaurantByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM restaurants
		WHERE email = $1`, email).
		Scan(&rest.ID, &rest.Name, &rest.Email, &rest.PasswordHash, &rest.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

// CreateRestaurantWithOwner inserts the tenant and its first Admin member atomically.
func (r *PostgresRepository) CreateRestaurantWithOwner(ctx context.Context, rest *domain.Restaurant, owner *domain.Member) error {
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	if owner.ID == "" {
		owner.ID = uuid.NewString()
	}
	owner.RestaurantID = rest.ID
	owner.RoleName = domain.RoleAdmin
	owner.IsActive = true

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO restaurants (id, name, email, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`,
			rest.ID, rest.Name, rest.Email, rest.PasswordHash,
		).Scan(&rest.CreatedAt); err != nil {
			return translate(err)
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM roles WHERE name = $1`, domain.RoleAdmin,
		).Scan(&owner.RoleID); err != nil {
			return fmt.Errorf("lookup admin role: %w", translate(err))
		}

		if err := tx.QueryRowContext(ctx, `
			INSERT INTO members (id, restaurant_id, role_id, name, email, password_hash, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			RETURNING created_at, updated_at`,
			owner.ID, owner.RestaurantID, owner.RoleID, owner.Name, owner.Email, nullString(owner.PasswordHash),
		).Scan(&owner.CreatedAt, &owner.UpdatedAt); err != nil {
			return translate(err)
		}
		return nil
	})
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
