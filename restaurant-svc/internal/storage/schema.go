package storage

import (
	"context"
	"fmt"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		role_id UUID NOT NULL REFERENCES roles(id),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT members_restaurant_email_key UNIQUE (restaurant_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_options (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_option_relations (
		menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		option_id UUID NOT NULL REFERENCES menu_item_options(id) ON DELETE CASCADE,
		PRIMARY KEY (menu_item_id, option_id)
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL,
		member_id UUID NOT NULL,
		event TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		log_type TEXT NOT NULL,
		affected_entity TEXT NOT NULL,
		affected_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_restaurant ON members(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_restaurant ON categories(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_options_restaurant ON menu_item_options(restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_relations_option ON menu_item_option_relations(option_id)`,
	`CREATE INDEX IF NOT EXISTS idx_logs_restaurant_created ON logs(restaurant_id, created_at DESC)`,
}

// EnsureSchema creates the tables if missing and seeds the default roles.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	for _, name := range domain.DefaultRoles {
		if _, err := r.DB.ExecContext(ctx,
			`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.NewString(), name,
		); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}
