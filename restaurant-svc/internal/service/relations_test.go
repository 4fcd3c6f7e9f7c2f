package service_test

import (
	"context"
	"strings"
	"testing"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOptionIDs(t *testing.T) {
	ids, err := service.NormalizeOptionIDs([]string{optionID2, strings.ToUpper(optionID), optionID, " " + optionID2 + " "})
	require.NoError(t, err)
	assert.Equal(t, []string{optionID2, optionID}, ids)

	_, err = service.NormalizeOptionIDs([]string{optionID, "cheese"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveRelations(t *testing.T) {
	options := mocks.NewOptionRepository(t)
	relations := service.NewMenuRelations(options)

	set, err := relations.Resolve(context.Background(), restaurantA, nil)
	require.NoError(t, err)
	assert.Empty(t, set)

	options.On("CountOwnedOptions", mock.Anything, restaurantA, []string{optionID}).Return(1, nil).Once()
	set, err = relations.Resolve(context.Background(), restaurantA, []string{optionID, optionID})
	require.NoError(t, err)
	assert.Equal(t, []string{optionID}, set)

	options.On("CountOwnedOptions", mock.Anything, restaurantB, []string{optionID}).Return(0, nil).Once()
	_, err = relations.Resolve(context.Background(), restaurantB, []string{optionID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
