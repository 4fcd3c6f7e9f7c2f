package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"
)

type NewMemberInput struct {
	Name     string
	Email    string
	Password string
	RoleID   string
}

type UpdateMemberInput struct {
	Name            string
	Email           string
	RoleID          string
	CurrentPassword string
	NewPassword     string
}

type MemberServiceInterface interface {
	Create(ctx context.Context, p *domain.Principal, in NewMemberInput) (*domain.Member, error)
	List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.Member], error)
	Get(ctx context.Context, p *domain.Principal, id string) (*domain.Member, error)
	Update(ctx context.Context, p *domain.Principal, id string, in UpdateMemberInput) error
	SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error
	Delete(ctx context.Context, p *domain.Principal, id string) error
}

type MemberService struct {
	Repo  MemberRepository
	Roles RoleRepository
	Audit *AuditWriter
}

func NewMemberService(repo MemberRepository, roles RoleRepository, audit *AuditWriter) *MemberService {
	return &MemberService{Repo: repo, Roles: roles, Audit: audit}
}

func (s *MemberService) Create(ctx context.Context, p *domain.Principal, in NewMemberInput) (*domain.Member, error) {
	role, err := s.Roles.GetRole(ctx, in.RoleID)
	if err != nil {
		return nil, fmt.Errorf("role: %w", err)
	}
	email := normalizeEmail(in.Email)
	if err := s.ensureEmailFree(ctx, p.RestaurantID, email, ""); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	m := &domain.Member{
		RestaurantID: p.RestaurantID,
		RoleID:       role.ID,
		RoleName:     role.Name,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogCreate, domain.EntityMember, m.ID,
		"Member created", fmt.Sprintf("member %s created with role %s", m.Email, role.Name)))
	return m, nil
}

func (s *MemberService) ensureEmailFree(ctx context.Context, restaurantID, email, exceptID string) error {
	other, err := s.Repo.GetMemberByEmail(ctx, restaurantID, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID == exceptID {
		return nil
	}
	return fmt.Errorf("%w: member email", domain.ErrConflict)
}

func (s *MemberService) List(ctx context.Context, p *domain.Principal, q domain.ListQuery) (domain.Page[domain.Member], error) {
	return paginate(ctx, q,
		func(ctx context.Context) (int, error) { return s.Repo.CountMembers(ctx, p.RestaurantID, q) },
		func(ctx context.Context) ([]domain.Member, error) { return s.Repo.ListMembers(ctx, p.RestaurantID, q) },
	)
}

func (s *MemberService) Get(ctx context.Context, p *domain.Principal, id string) (*domain.Member, error) {
	return s.Repo.GetMember(ctx, p.RestaurantID, id)
}

// Update edits profile and role. Changing the password of a member that has
// one requires the current password.
func (s *MemberService) Update(ctx context.Context, p *domain.Principal, id string, in UpdateMemberInput) error {
	m, err := s.Repo.GetMember(ctx, p.RestaurantID, id)
	if err != nil {
		return err
	}

	if in.RoleID != "" && in.RoleID != m.RoleID {
		role, err := s.Roles.GetRole(ctx, in.RoleID)
		if err != nil {
			return fmt.Errorf("role: %w", err)
		}
		m.RoleID, m.RoleName = role.ID, role.Name
	}

	if email := normalizeEmail(in.Email); email != "" && email != m.Email {
		if err := s.ensureEmailFree(ctx, p.RestaurantID, email, m.ID); err != nil {
			return err
		}
		m.Email = email
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		m.Name = name
	}

	if in.CurrentPassword != "" && !CheckPassword(m.PasswordHash, in.CurrentPassword) {
		return domain.ErrInvalidCredentials
	}
	passwordChanged := false
	if in.NewPassword != "" {
		if m.HasPassword() && in.CurrentPassword == "" {
			return domain.ErrInvalidCredentials
		}
		if m.PasswordHash, err = HashPassword(in.NewPassword); err != nil {
			return err
		}
		passwordChanged = true
	}

	if err := s.Repo.UpdateMember(ctx, m); err != nil {
		return err
	}

	desc := fmt.Sprintf("member %s updated, role %s", m.Email, m.RoleName)
	if passwordChanged {
		desc += ", password changed"
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityMember, m.ID, "Member updated", desc))
	return nil
}

func (s *MemberService) SetActive(ctx context.Context, p *domain.Principal, id string, active bool) error {
	if err := s.Repo.SetMemberActive(ctx, p.RestaurantID, id, active); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogUpdate, domain.EntityMember, id,
		"Member status changed", fmt.Sprintf("member active=%t", active)))
	return nil
}

// Delete removes the member row. Audit history keeps the member id.
func (s *MemberService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	if err := s.Repo.DeleteMember(ctx, p.RestaurantID, id); err != nil {
		return err
	}
	s.Audit.Record(ctx, entryFor(p, domain.LogDelete, domain.EntityMember, id,
		"Member deleted", "member removed"))
	return nil
}
