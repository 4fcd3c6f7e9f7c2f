package domain_test

import (
	"testing"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	for total, want := range map[int]int{0: 0, 1: 1, 8: 1, 9: 2, 16: 2, 17: 3} {
		assert.Equal(t, want, domain.TotalPages(total), "total=%d", total)
	}
}

func TestListQuery(t *testing.T) {
	q := domain.ListQuery{Page: 3, Search: "  Pi_zza 100% "}
	assert.Equal(t, 16, q.Offset())
	assert.Equal(t, `%Pi\_zza 100\%%`, q.Pattern())

	assert.Equal(t, "%%", domain.ListQuery{Page: 1}.Pattern())
}
