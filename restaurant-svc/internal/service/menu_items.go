package service

import (
	"context"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type MenuItemInput struct {
	Name          string
	Description   string
	Price         domain.Money
	CategoryID    string
	ImageBase64   string
	ComplementIDs []string
	// ReplaceComplements is false when the request did not mention complements at all.
	ReplaceComplements bool
}

type MenuItemServiceInterface interface {
	Create(ctx context.Context, p *domain.Principal, in MenuItemInput) (*domain.MenuItem, error)
	List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.MenuItem], error)
	Get(ctx context.Context, p *domain.Principal, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, p *domain.Principal, id string, in MenuItemInput) error
	SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error
	Delete(ctx context.Context, p *domain.Principal, id string) error
}

type MenuItemService struct {
	Repo       MenuItemRepository
	Categories CategoryRepository
	Relations  *MenuRelations
	Assets     *AssetManager
	Audit      *AuditWriter
	Log        *logrus.Entry
}

func NewMenuItemService(repo MenuItemRepository, categories CategoryRepository, relations *MenuRelations,
	assets *AssetManager, audit *AuditWriter, log *logrus.Entry) *MenuItemService {
	return &MenuItemService{
		Repo:       repo,
		Categories: categories,
		Relations:  relations,
		Assets:     assets,
		Audit:      audit,
		Log:        log,
	}
}

func (s *MenuItemService) Create(ctx context.Context, p *domain.Principal, in MenuItemInput) (*domain.MenuItem, error) {
	category, err := s.Categories.GetCategory(ctx, p.RestaurantID, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category: %w", err)
	}
	optionIDs, err := s.Relations.Resolve(ctx, p.RestaurantID, in.ComplementIDs)
	if err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		RestaurantID: p.RestaurantID,
		CategoryID:   category.ID,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		IsActive:     true,
	}
	if in.ImageBase64 != "" {
		raw, err := DecodeImage(in.ImageBase64)
		if err != nil {
			return nil, err
		}
		if item.ImageURL, err = s.Assets.UploadImage(ctx, p.RestaurantID, raw); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.CreateMenuItem(ctx, item, optionIDs); err != nil {
		s.Assets.Discard(ctx, item.ImageURL)
		return nil, err
	}

	s.Audit.Record(ctx, entryFor(p, domain.LogCreate, domain.EntityMenuItem, item.ID,
		"Menu item created", fmt.Sprintf("menu item %q created in %q with %d complements", item.Name, category.Name, len(optionIDs))))

	created, err := s.Get(ctx, p, item.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *MenuItemService) List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.MenuItem], error) {
	page, err := paginate(ctx, q,
		func(ctx context.Context) (int, error) { return s.Repo.CountMenuItems(ctx, p.RestaurantID, q) },
		func(ctx context.Context) ([]domain.MenuItem, error) { return s.Repo.ListMenuItems(ctx, p.RestaurantID, q) },
	)
	if err != nil {
		return page, err
	}
	for i := range page.Items {
		s.resolveImage(ctx, &page.Items[i])
	}
	return page, nil
}

func (s *MenuItemService) Get(ctx context.Context, p *domain.Principal, id string) (*domain.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, p.RestaurantID, id)
	if err != nil {
		return nil, err
	}
	s.resolveImage(ctx, item)
	return item, nil
}

// resolveImage swaps the stored image reference for a readable URL. A signing
// failure leaves the item without an image rather than failing the read.
func (s *MenuItemService) resolveImage(ctx context.Context, item *domain.MenuItem) {
	url, err := s.Assets.ResolveReadURL(ctx, item.ImageURL)
	if err != nil {
		s.Log.WithError(err).WithField("menu_item_id", item.ID).Warn("could not sign image url")
		url = ""
	}
	item.ImageURL = url
}

// Update rewrites the item. A new image replaces the stored one and, when
// complements are supplied, the association set is replaced wholesale.
func (s *MenuItemService) Update(ctx context.Context, p *domain.Principal, id string, in MenuItemInput) error {
	existing, err := s.Repo.GetMenuItem(ctx, p.RestaurantID, id)
	if err != nil {
		return err
	}

	categoryID := existing.CategoryID
	if in.CategoryID != "" && in.CategoryID != existing.CategoryID {
		category, err := s.Categories.GetCategory(ctx, p.RestaurantID, in.CategoryID)
		if err != nil {
			return fmt.Errorf("category: %w", err)
		}
		categoryID = category.ID
	}

	var optionIDs []string
	if in.ReplaceComplements {
		if optionIDs, err = s.Relations.Resolve(ctx, p.RestaurantID, in.ComplementIDs); err != nil {
			return err
		}
	}

	item := &domain.MenuItem{
		ID:           existing.ID,
		RestaurantID: p.RestaurantID,
		CategoryID:   categoryID,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		ImageURL:     existing.ImageURL,
	}

	newImage := ""
	if in.ImageBase64 != "" {
		raw, err := DecodeImage(in.ImageBase64)
		if err != nil {
			return err
		}
		if newImage, err = s.Assets.ReplaceImage(ctx, p.RestaurantID, existing.ImageURL, raw); err != nil {
			return err
		}
		item.ImageURL = newImage
	}

	if err := s.Repo.UpdateMenuItem(ctx, item, optionIDs, in.ReplaceComplements); err != nil {
		s.Assets.Discard(ctx, newImage)
		return err
	}

	desc := fmt.Sprintf("menu item %q updated", item.Name)
	if in.ReplaceComplements {
		desc += fmt.Sprintf(", %d complements", len(optionIDs))
	}
	if newImage != "" {
		desc += ", image replaced"
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityMenuItem, item.ID, "Menu item updated", desc))
	return nil
}

func (s *MenuItemService) SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error {
	if err := s.Repo.SetMenuItemActive(ctx, p.RestaurantID, id, active); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityMenuItem, id,
		"Menu item status changed", fmt.Sprintf("menu item active=%t", active)))
	return nil
}

func (s *MenuItemService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	existing, err := s.Repo.GetMenuItem(ctx, p.RestaurantID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteMenuItem(ctx, p.RestaurantID, id); err != nil {
		return err
	}
	s.Assets.Discard(ctx, existing.ImageURL)
	s.Audit.Record(ctx, entryFor(p, domain.LogDelete, domain.EntityMenuItem, id,
		"Menu item deleted", fmt.Sprintf("menu item %q deleted", existing.Name)))
	return nil
}
