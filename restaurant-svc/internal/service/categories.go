package service

import (
	"context"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, p *domain.Principal, name string) (*domain.Category, error)
	List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.Category], error)
	ListActive(ctx context.Context, p *domain.Principal) ([]domain.CategoryRef, error)
	Get(ctx context.Context, p *domain.Principal, id string) (*domain.Category, error)
	Rename(ctx context.Context, p *domain.Principal, id, name string) error
	Update(ctx context.Context, p *domain.Principal, id, name string, active bool) error
	SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error
	Delete(ctx context.Context, p *domain.Principal, id string) error
}

type CategoryService struct {
	Repo   CategoryRepository
	Assets *AssetManager
	Audit  *AuditWriter
}

func NewCategoryService(repo CategoryRepository, assets *AssetManager, audit *AuditWriter) *CategoryService {
	return &CategoryService{Repo: repo, Assets: assets, Audit: audit}
}

func (s *CategoryService) Create(ctx context.Context, p *domain.Principal, name string) (*domain.Category, error) {
	c := &domain.Category{RestaurantID: p.RestaurantID, Name: strings.TrimSpace(name), IsActive: true}
	if err := s.Repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogCreate, domain.EntityCategory, c.ID,
		"Category created", fmt.Sprintf("category %q created", c.Name)))
	return c, nil
}

func (s *CategoryService) List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.Category], error) {
	return paginate(ctx, q,
		func(ctx context.Context) (int, error) { return s.Repo.CountCategories(ctx, p.RestaurantID, q) },
		func(ctx context.Context) ([]domain.Category, error) { return s.Repo.ListCategories(ctx, p.RestaurantID, q) },
	)
}

func (s *CategoryService) ListActive(ctx context.Context, p *domain.Principal) ([]domain.CategoryRef, error) {
	return s.Repo.ListActiveCategories(ctx, p.RestaurantID)
}

func (s *CategoryService) Get(ctx context.Context, p *domain.Principal, id string) (*domain.Category, error) {
	return s.Repo.GetCategory(ctx, p.RestaurantID, id)
}

func (s *CategoryService) Rename(ctx context.Context, p *domain.Principal, id, name string) error {
	name = strings.TrimSpace(name)
	if err := s.Repo.RenameCategory(ctx, p.RestaurantID, id, name); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityCategory, id,
		"Category updated", fmt.Sprintf("category renamed to %q", name)))
	return nil
}

// Update changes name and status; the status is applied to every item in the category.
func (s *CategoryService) Update(ctx context.Context, p *domain.Principal, id, name string, active bool) error {
	name = strings.TrimSpace(name)
	if err := s.Repo.UpdateCategory(ctx, p.RestaurantID, id, name, active); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityCategory, id,
		"Category updated", fmt.Sprintf("category %q updated, active=%t", name, active)))
	return nil
}

func (s *CategoryService) SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error {
	if err := s.Repo.SetCategoryActive(ctx, p.RestaurantID, id, active); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityCategory, id,
		"Category status changed", fmt.Sprintf("category active=%t, menu items follow", active)))
	return nil
}

// Delete removes the category and its menu items, then discards their images.
func (s *CategoryService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	images, err := s.Repo.DeleteCategory(ctx, p.RestaurantID, id)
	if err != nil {
		return err
	}
	for _, key := range images {
		s.Assets.Discard(ctx, key)
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogDelete, domain.EntityCategory, id,
		"Category deleted", fmt.Sprintf("category and its menu items deleted, %d images discarded", len(images))))
	return nil
}
