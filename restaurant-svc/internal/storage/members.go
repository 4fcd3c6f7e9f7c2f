package storage

import (
	"context"
	"database/sql"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

const memberColumns = `
	m.id, m.restaurant_id, m.role_id, ro.name, m.name, m.email,
	COALESCE(m.password_hash, ''), m.is_active, m.created_at, m.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(&m.ID, &m.RestaurantID, &m.RoleID, &m.RoleName, &m.Name, &m.Email,
		&m.PasswordHash, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) GetMember(ctx context.Context, restaurantID, memberID string) (*domain.Member, error) {
	m, err := scanMember(r.DB.QueryRowContext(ctx, `
		SELECT`+memberColumns+`
		FROM members m
		JOIN roles ro ON ro.id = m.role_id
		WHERE m.id = $1 AND m.restaurant_id = $2`, memberID, restaurantID))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (r *PostgresRepository) GetMemberByEmail(ctx context.Context, restaurantID, email string) (*domain.Member, error) {
	m, err := scanMember(r.DB.QueryRowContext(ctx, `
		SELECT`+memberColumns+`
		FROM members m
		JOIN roles ro ON ro.id = m.role_id
		WHERE m.email = $1 AND m.restaurant_id = $2`, email, restaurantID))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (r *PostgresRepository) CountMembers(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	return count(ctx, r.DB, `
		SELECT COUNT(*)
		FROM members
		WHERE restaurant_id = $1 AND (name ILIKE $2 OR email ILIKE $2)`,
		restaurantID, q.Pattern())
}

func (r *PostgresRepository) ListMembers(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Member, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT`+memberColumns+`
		FROM members m
		JOIN roles ro ON ro.id = m.role_id
		WHERE m.restaurant_id = $1 AND (m.name ILIKE $2 OR m.email ILIKE $2)
		ORDER BY m.created_at DESC, m.id
		LIMIT $3 OFFSET $4`,
		restaurantID, q.Pattern(), domain.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *PostgresRepository) CreateMember(ctx context.Context, m *domain.Member) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO members (id, restaurant_id, role_id, name, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		m.ID, m.RestaurantID, m.RoleID, m.Name, m.Email, nullString(m.PasswordHash), m.IsActive,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return translate(err)
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, m *domain.Member) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE members
		SET name = $1, email = $2, role_id = $3, password_hash = $4, updated_at = now()
		WHERE id = $5 AND restaurant_id = $6`,
		m.Name, m.Email, m.RoleID, nullString(m.PasswordHash), m.ID, m.RestaurantID))
}

func (r *PostgresRepository) SetMemberActive(ctx context.Context, restaurantID, memberID string, active bool) error {
	return affectedOne(r.DB.ExecContext(ctx, `
		UPDATE members SET is_active = $1, updated_at = now()
		WHERE id = $2 AND restaurant_id = $3`,
		active, memberID, restaurantID))
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, restaurantID, memberID string) error {
	return affectedOne(r.DB.ExecContext(ctx,
		`DELETE FROM members WHERE id = $1 AND restaurant_id = $2`, memberID, restaurantID))
}

var _ rowScanner = (*sql.Row)(nil)
