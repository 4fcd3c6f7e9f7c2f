package service

import (
	"context"
	"fmt"

	"kuchi/restaurant-svc/internal/domain"
)

// paginate counts first and skips the page query when nothing matches.
func paginate[T any](
	ctx context.Context,
	q domain.ListQuery,
	countFn func(context.Context) (int, error),
	listFn func(context.Context) ([]T, error),
) (domain.Page[T], error) {
	if q.Page < 1 {
		return domain.Page[T]{}, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidInput)
	}
	total, err := countFn(ctx)
	if err != nil {
		return domain.Page[T]{}, err
	}
	if total == 0 {
		return domain.Page[T]{Items: []T{}, TotalPages: 0}, nil
	}
	items, err := listFn(ctx)
	if err != nil {
		return domain.Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	return domain.Page[T]{Items: items, TotalPages: domain.TotalPages(total)}, nil
}
