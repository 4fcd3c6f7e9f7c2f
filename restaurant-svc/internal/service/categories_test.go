package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryAssets wires an asset manager over store, or over a store that expects no calls.
func categoryAssets(t *testing.T, store *mocks.ObjectStore) *service.AssetManager {
	if store == nil {
		store = mocks.NewObjectStore(t)
	}
	log, _ := nullLog()
	return service.NewAssetManager(store, nil, time.Hour, log)
}

func TestListCategoriesPagination(t *testing.T) {
	p := principal(domain.RoleAdmin)

	tests := []struct {
		name      string
		q         domain.ListQuery
		prepare   func(repo *mocks.CategoryRepository, q domain.ListQuery)
		wantErr   error
		wantItems int
		wantPages int
	}{
		{
			name:    "page below one",
			q:       domain.ListQuery{Page: 0},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "no matches skips the page query",
			q:    domain.ListQuery{Page: 1, Search: "sushi"},
			prepare: func(repo *mocks.CategoryRepository, q domain.ListQuery) {
				repo.On("CountCategories", mock.Anything, restaurantA, q).Return(0, nil).Once()
			},
		},
		{
			name: "last partial page",
			q:    domain.ListQuery{Page: 3},
			prepare: func(repo *mocks.CategoryRepository, q domain.ListQuery) {
				repo.On("CountCategories", mock.Anything, restaurantA, q).Return(17, nil).Once()
				repo.On("ListCategories", mock.Anything, restaurantA, q).
					Return([]domain.Category{{ID: categoryID, Name: "Desserts"}}, nil).Once()
			},
			wantItems: 1,
			wantPages: 3,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCategoryRepository(t)
			if testCase.prepare != nil {
				testCase.prepare(repo, testCase.q)
			}
			svc := service.NewCategoryService(repo, categoryAssets(t, nil), silentAudit(t))

			page, err := svc.List(context.Background(), p, testCase.q)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, page.Items)
			assert.Len(t, page.Items, testCase.wantItems)
			assert.Equal(t, testCase.wantPages, page.TotalPages)
		})
	}
}

func TestCategoryStatusIsAudited(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	repo.On("SetCategoryActive", mock.Anything, restaurantA, categoryID, false).Return(nil).Once()
	svc := service.NewCategoryService(repo, categoryAssets(t, nil), auditExpecting(t, domain.LogUpdate, domain.EntityCategory))

	assert.NoError(t, svc.SetActive(context.Background(), principal(domain.RoleManager), categoryID, false))
}

func TestCategoryNotFoundIsNotAudited(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	repo.On("DeleteCategory", mock.Anything, restaurantA, categoryID).Return(nil, domain.ErrNotFound).Once()
	svc := service.NewCategoryService(repo, categoryAssets(t, nil), silentAudit(t))

	err := svc.Delete(context.Background(), principal(domain.RoleAdmin), categoryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategoryDiscardsItemImages(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	store := mocks.NewObjectStore(t)
	repo.On("DeleteCategory", mock.Anything, restaurantA, categoryID).
		Return([]string{"menu-items/a.png", "https://legacy/img.png", "menu-items/b.png"}, nil).Once()
	store.On("DeleteObject", mock.Anything, "menu-items/a.png").Return(nil).Once()
	store.On("DeleteObject", mock.Anything, "menu-items/b.png").Return(errors.New("access denied")).Once()
	svc := service.NewCategoryService(repo, categoryAssets(t, store), auditExpecting(t, domain.LogDelete, domain.EntityCategory))

	assert.NoError(t, svc.Delete(context.Background(), principal(domain.RoleAdmin), categoryID))
}

func TestCreateCategory(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	repo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.RestaurantID == restaurantA && c.Name == "Drinks" && c.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Category).ID = categoryID
	}).Return(nil).Once()
	svc := service.NewCategoryService(repo, categoryAssets(t, nil), auditExpecting(t, domain.LogCreate, domain.EntityCategory))

	c, err := svc.Create(context.Background(), principal(domain.RoleTechnicalSupport), "  Drinks ")
	require.NoError(t, err)
	assert.Equal(t, categoryID, c.ID)
}
