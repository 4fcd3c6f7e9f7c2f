package service

import (
	"context"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"
)

type OptionInput struct {
	Name  string
	Price domain.Money
}

type OptionServiceInterface interface {
	Create(ctx context.Context, p *domain.Principal, in OptionInput) (*domain.MenuItemOption, error)
	List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.MenuItemOption], error)
	ListActive(ctx context.Context, p *domain.Principal) ([]domain.MenuItemOption, error)
	Get(ctx context.Context, p *domain.Principal, id string) (*domain.MenuItemOption, error)
	Update(ctx context.Context, p *domain.Principal, id string, in OptionInput) error
	SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error
	Delete(ctx context.Context, p *domain.Principal, id string) error
}

type OptionService struct {
	Repo  OptionRepository
	Audit *AuditWriter
}

func NewOptionService(repo OptionRepository, audit *AuditWriter) *OptionService {
	return &OptionService{Repo: repo, Audit: audit}
}

func (s *OptionService) Create(ctx context.Context, p *domain.Principal, in OptionInput) (*domain.MenuItemOption, error) {
	o := &domain.MenuItemOption{
		RestaurantID: p.RestaurantID,
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		IsActive:     true,
	}
	if err := s.Repo.CreateOption(ctx, o); err != nil {
		return nil, err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogCreate, domain.EntityComplement, o.ID,
		"Complement created", fmt.Sprintf("complement %q created at %s", o.Name, o.Price)))
	return o, nil
}

func (s *OptionService) List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.MenuItemOption], error) {
	return paginate(ctx, q,
		func(ctx context.Context) (int, error) { return s.Repo.CountOptions(ctx, p.RestaurantID, q) },
		func(ctx context.Context) ([]domain.MenuItemOption, error) { return s.Repo.ListOptions(ctx, p.RestaurantID, q) },
	)
}

func (s *OptionService) ListActive(ctx context.Context, p *domain.Principal) ([]domain.MenuItemOption, error) {
	return s.Repo.ListActiveOptions(ctx, p.RestaurantID)
}

func (s *OptionService) Get(ctx context.Context, p *domain.Principal, id string) (*domain.MenuItemOption, error) {
	return s.Repo.GetOption(ctx, p.RestaurantID, id)
}

func (s *OptionService) Update(ctx context.Context, p *domain.Principal, id string, in OptionInput) error {
	o := &domain.MenuItemOption{ID: id, RestaurantID: p.RestaurantID, Name: strings.TrimSpace(in.Name), Price: in.Price}
	if err := s.Repo.UpdateOption(ctx, o); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityComplement, id,
		"Complement updated", fmt.Sprintf("complement %q now costs %s", o.Name, o.Price)))
	return nil
}

// SetActive does not cascade to the menu items that reference the option.
func (s *OptionService) SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error {
	if err := s.Repo.SetOptionActive(ctx, p.RestaurantID, id, active); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityComplement, id,
		"Complement status changed", fmt.Sprintf("complement active=%t", active)))
	return nil
}

func (s *OptionService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	if err := s.Repo.DeleteOption(ctx, p.RestaurantID, id); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogDelete, domain.EntityComplement, id,
		"Complement deleted", "complement and its menu item links deleted"))
	return nil
}
