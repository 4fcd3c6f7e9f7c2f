package service

import (
	"context"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

// MenuRelations prepares the option set attached to a menu item.
type MenuRelations struct {
	Options OptionRepository
}

func NewMenuRelations(options OptionRepository) *MenuRelations {
	return &MenuRelations{Options: options}
}

// NormalizeOptionIDs validates ids and drops duplicates, keeping first occurrence order.
func NormalizeOptionIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		parsed, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: complement id %q", domain.ErrInvalidInput, raw)
		}
		id := parsed.String()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// Resolve returns the normalized set, failing with ErrNotFound when any id
// does not belong to the restaurant.
func (m *MenuRelations) Resolve(ctx context.Context, restaurantID string, ids []string) ([]string, error) {
	set, err := NormalizeOptionIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return set, nil
	}
	owned, err := m.Options.CountOwnedOptions(ctx, restaurantID, set)
	if err != nil {
		return nil, err
	}
	if owned != len(set) {
		return nil, fmt.Errorf("%w: complement", domain.ErrNotFound)
	}
	return set, nil
}
