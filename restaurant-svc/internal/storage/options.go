package storage

import (
	"context"
	"database/sql"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const optionColumns = `id, restaurant_id, name, price, is_active, created_at, updated_at`

func scanOption(row rowScanner) (*domain.MenuItemOption, error) {
	var o domain.MenuItemOption
	if err := row.Scan(&o.ID, &o.RestaurantID, &o.Name, &o.Price, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) queryOptions(ctx context.Context, query string, args ...any) ([]domain.MenuItemOption, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []domain.MenuItemOption{}
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		options = append(options, *o)
	}
	return options, rows.Err()
}

func (r *PostgresRepository) CountOptions(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	return count(ctx, r.DB,
		`SELECT COUNT(*) FROM menu_item_options WHERE restaurant_id = $1 AND name ILIKE $2`,
		restaurantID, q.Pattern())
}

func (r *PostgresRepository) ListOptions(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItemOption, error) {
	return r.queryOptions(ctx, `
		SELECT `+optionColumns+`
		FROM menu_item_options
		WHERE restaurant_id = $1 AND name ILIKE $2
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`,
		restaurantID, q.Pattern(), domain.PageSize, q.Offset())
}

func (r *PostgresRepository) ListActiveOptions(ctx context.Context, restaurantID string) ([]domain.MenuItemOption, error) {
	return r.queryOptions(ctx, `
		SELECT `+optionColumns+`
		FROM menu_item_options
		WHERE restaurant_id = $1 AND is_active
		ORDER BY name`, restaurantID)
}

func (r *PostgresRepository) GetOption(ctx context.Context, restaurantID, optionID string) (*domain.MenuItemOption, error) {
	o, err := scanOption(r.DB.QueryRowContext(ctx, `
		SELECT `+optionColumns+`
		FROM menu_item_options
		WHERE id = $1 AND restaurant_id = $2`, optionID, restaurantID))
	if err != nil {
		return nil, translate(err)
	}
	return o, nil
}

// CountOwnedOptions reports how many of optionIDs belong to the restaurant.
func (r *PostgresRepository) CountOwnedOptions(ctx context.Context, restaurantID string, optionIDs []string) (int, error) {
	if len(optionIDs) == 0 {
		return 0, nil
	}
	return count(ctx, r.DB,
		`SELECT COUNT(*) FROM menu_item_options WHERE restaurant_id = $1 AND id = ANY($2)`,
		restaurantID, pq.Array(optionIDs))
}

func (r *PostgresRepository) CreateOption(ctx context.Context, o *domain.MenuItemOption) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_item_options (id, restaurant_id, name, price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		o.ID, o.RestaurantID, o.Name, o.Price, o.IsActive,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	return translate(err)
}

func (r *PostgresRepository) UpdateOption(ctx context.Context, o *domain.MenuItemOption) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE menu_item_options SET name = $1, price = $2, updated_at = now()
		WHERE id = $3 AND restaurant_id = $4`,
		o.Name, o.Price, o.ID, o.RestaurantID))
}

// SetOptionActive only touches the option; menu items keep their own status.
func (r *PostgresRepository) SetOptionActive(ctx context.Context, restaurantID, optionID string, active bool) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE menu_item_options SET is_active = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3`,
		active, optionID, restaurantID))
}

// DeleteOption removes the option and every association to it.
func (r *PostgresRepository) DeleteOption(ctx context.Context, restaurantID, optionID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM menu_item_option_relations rel
			USING menu_item_options o
			WHERE rel.option_id = o.id AND o.id = $1 AND o.restaurant_id = $2`,
			optionID, restaurantID); err != nil {
			return err
		}
		return affectedOne(tx.ExecContext(ctx,
			`DELETE FROM menu_item_options WHERE id = $1 AND restaurant_id = $2`, optionID, restaurantID))
	})
}
