package storage

import (
	"context"
	"database/sql"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

const categoryColumns = `
	c.id, c.restaurant_id, c.name, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM menu_items mi WHERE mi.category_id = c.id)`

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.TotalMenuItems); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) CountCategories(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	return count(ctx, r.DB,
		`SELECT COUNT(*) FROM categories WHERE restaurant_id = $1 AND name ILIKE $2`,
		restaurantID, q.Pattern())
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT`+categoryColumns+`
		FROM categories c
		WHERE c.restaurant_id = $1 AND c.name ILIKE $2
		ORDER BY c.created_at DESC, c.id
		LIMIT $3 OFFSET $4`,
		restaurantID, q.Pattern(), domain.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) ListActiveCategories(ctx context.Context, restaurantID string) ([]domain.CategoryRef, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name FROM categories
		WHERE restaurant_id = $1 AND is_active
		ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []domain.CategoryRef{}
	for rows.Next() {
		var ref domain.CategoryRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, restaurantID, categoryID string) (*domain.Category, error) {
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `
		SELECT`+categoryColumns+`
		FROM categories c
		WHERE c.id = $1 AND c.restaurant_id = $2`, categoryID, restaurantID))
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO categories (id, restaurant_id, name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		c.ID, c.RestaurantID, c.Name, c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

func (r *PostgresRepository) RenameCategory(ctx context.Context, restaurantID, categoryID, name string) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE categories SET name = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3`,
		name, categoryID, restaurantID))
}

// UpdateCategory sets name and status and propagates the status to the
// category's menu items in one transaction.
func (r *PostgresRepository) UpdateCategory(ctx context.Context, restaurantID, categoryID, name string, active bool) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := affectedOne(tx.ExecContext(ctx, `
			UPDATE categories SET name = $1, is_active = $2, updated_at = now()
			WHERE id = $3 AND restaurant_id = $4`,
			name, active, categoryID, restaurantID)); err != nil {
			return err
		}
		return cascadeItemStatus(ctx, tx, restaurantID, categoryID, active)
	})
}

func (r *PostgresRepository) SetCategoryActive(ctx context.Context, restaurantID, categoryID string, active bool) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := affectedOne(tx.ExecContext(ctx, `
			UPDATE categories SET is_active = $1, updated_at = now()
			WHERE id = $2 AND restaurant_id = $3`,
			active, categoryID, restaurantID)); err != nil {
			return err
		}
		return cascadeItemStatus(ctx, tx, restaurantID, categoryID, active)
	})
}

func cascadeItemStatus(ctx context.Context, tx *sql.Tx, restaurantID, categoryID string, active bool) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE menu_items SET is_active = $1, updated_at = now()
		WHERE category_id = $2 AND restaurant_id = $3`,
		active, categoryID, restaurantID)
	return err
}

// DeleteCategory removes the category together with its menu items and
// returns the image keys those items referenced.
func (r *PostgresRepository) DeleteCategory(ctx context.Context, restaurantID, categoryID string) ([]string, error) {
	var images []string
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		if images, err = deleteCategoryItems(ctx, tx, restaurantID, categoryID); err != nil {
			return err
		}
		return affectedOne(tx.ExecContext(ctx,
			`DELETE FROM categories WHERE id = $1 AND restaurant_id = $2`,
			categoryID, restaurantID))
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func deleteCategoryItems(ctx context.Context, tx *sql.Tx, restaurantID, categoryID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		`DELETE FROM menu_items WHERE category_id = $1 AND restaurant_id = $2 RETURNING image_url`,
		categoryID, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		if key != "" {
			images = append(images, key)
		}
	}
	return images, rows.Err()
}
