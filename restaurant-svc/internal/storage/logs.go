package storage

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

func (r *PostgresRepository) InsertLog(ctx context.Context, e *domain.LogEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO logs (id, restaurant_id, member_id, event, description, log_type, affected_entity, affected_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		e.ID, e.RestaurantID, e.MemberID, e.Event, e.Description,
		string(e.LogType), string(e.AffectedEntity), e.AffectedID,
	).Scan(&e.CreatedAt)
}
