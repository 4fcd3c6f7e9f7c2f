package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"
)

type RoleServiceInterface interface {
	Create(ctx context.Context, p *domain.Principal, name string) (*domain.Role, error)
	List(ctx context.Context, p *domain.Principal) ([]domain.Role, error)
}

type RoleService struct {
	Repo  RoleRepository
	Audit *AuditWriter
}

func NewRoleService(repo RoleRepository, audit *AuditWriter) *RoleService {
	return &RoleService{Repo: repo, Audit: audit}
}

func (s *RoleService) Create(ctx context.Context, p *domain.Principal, name string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	_, err := s.Repo.GetRoleByName(ctx, name)
	if err == nil {
		return nil, fmt.Errorf("%w: role %q", domain.ErrConflict, name)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	role := &domain.Role{Name: name}
	if err := s.Repo.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogCreate, domain.EntityRole, role.ID,
		"Role created", fmt.Sprintf("role %q created", role.Name)))
	return role, nil
}

// List hides the Admin role from managers so they cannot hand it out.
func (s *RoleService) List(ctx context.Context, p *domain.Principal) ([]domain.Role, error) {
	roles, err := s.Repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	if p.Member == nil || p.Member.RoleName != domain.RoleManager {
		return roles, nil
	}
	visible := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		if r.Name != domain.RoleAdmin {
			visible = append(visible, r)
		}
	}
	return visible, nil
}
