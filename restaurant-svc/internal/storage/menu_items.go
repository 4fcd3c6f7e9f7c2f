package storage

import (
	"context"
	"database/sql"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const menuItemColumns = `
	mi.id, mi.restaurant_id, mi.category_id, c.name, mi.name, mi.description,
	mi.price, mi.image_url, mi.is_active, mi.created_at, mi.updated_at`

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var (
		item domain.MenuItem
		cat  domain.CategoryRef
	)
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &cat.Name, &item.Name, &item.Description,
		&item.Price, &item.ImageURL, &item.IsActive, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	cat.ID = item.CategoryID
	item.Category = &cat
	item.Complements = []domain.OptionRef{}
	return &item, nil
}

func (r *PostgresRepository) CountMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	return count(ctx, r.DB,
		`SELECT COUNT(*) FROM menu_items WHERE restaurant_id = $1 AND name ILIKE $2`,
		restaurantID, q.Pattern())
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT`+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.restaurant_id = $1 AND mi.name ILIKE $2
		ORDER BY mi.created_at DESC, mi.id
		LIMIT $3 OFFSET $4`,
		restaurantID, q.Pattern(), domain.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	byItem, err := r.optionRefs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if refs, ok := byItem[items[i].ID]; ok {
			items[i].Complements = refs
		}
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT`+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = $1 AND mi.restaurant_id = $2`, itemID, restaurantID))
	if err != nil {
		return nil, translate(err)
	}

	byItem, err := r.optionRefs(ctx, []string{item.ID})
	if err != nil {
		return nil, err
	}
	if refs, ok := byItem[item.ID]; ok {
		item.Complements = refs
	}
	return item, nil
}

// optionRefs loads the options attached to each of the given menu items.
func (r *PostgresRepository) optionRefs(ctx context.Context, itemIDs []string) (map[string][]domain.OptionRef, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rel.menu_item_id, o.id, o.name, o.price
		FROM menu_item_option_relations rel
		JOIN menu_item_options o ON o.id = rel.option_id
		WHERE rel.menu_item_id = ANY($1)
		ORDER BY o.name`, pq.Array(itemIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.OptionRef)
	for rows.Next() {
		var (
			itemID string
			ref    domain.OptionRef
		)
		if err := rows.Scan(&itemID, &ref.ID, &ref.Name, &ref.Price); err != nil {
			return nil, err
		}
		out[itemID] = append(out[itemID], ref)
	}
	return out, rows.Err()
}

// CreateMenuItem inserts the item and its option associations atomically.
func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO menu_items (id, restaurant_id, category_id, name, description, price, image_url, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at`,
			item.ID, item.RestaurantID, item.CategoryID, item.Name, item.Description,
			item.Price, item.ImageURL, item.IsActive,
		).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
			return translate(err)
		}
		return insertRelations(ctx, tx, item.ID, optionIDs)
	})
}

// UpdateMenuItem writes the item's fields and, when replaceOptions is set,
// swaps its option associations for optionIDs in the same transaction.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string, replaceOptions bool) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := affectedOne(tx.ExecContext(ctx, `
			UPDATE menu_items
			SET name = $1, description = $2, price = $3, category_id = $4, image_url = $5, updated_at = now()
			WHERE id = $6 AND restaurant_id = $7`,
			item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL,
			item.ID, item.RestaurantID)); err != nil {
			return err
		}
		if !replaceOptions {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM menu_item_option_relations WHERE menu_item_id = $1`, item.ID); err != nil {
			return err
		}
		return insertRelations(ctx, tx, item.ID, optionIDs)
	})
}

func insertRelations(ctx context.Context, tx *sql.Tx, itemID string, optionIDs []string) error {
	for _, optionID := range optionIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO menu_item_option_relations (menu_item_id, option_id) VALUES ($1, $2)`,
			itemID, optionID); err != nil {
			return translate(err)
		}
	}
	return nil
}

func (r *PostgresRepository) SetMenuItemActive(ctx context.Context, restaurantID, itemID string, active bool) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE menu_items SET is_active = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3`,
		active, itemID, restaurantID))
}

// DeleteMenuItem removes the item; its option associations go with it.
func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, restaurantID, itemID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM menu_item_option_relations rel
			USING menu_items mi
			WHERE rel.menu_item_id = mi.id AND mi.id = $1 AND mi.restaurant_id = $2`,
			itemID, restaurantID); err != nil {
			return err
		}
		return affectedOne(tx.ExecContext(ctx,
			`DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID))
	})
}
