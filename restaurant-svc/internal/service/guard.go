package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	ManagementRoles = domain.NewRoleSet(domain.RoleAdmin, domain.RoleManager, domain.RoleTechnicalSupport)
	MenuEditorRoles = ManagementRoles.With(domain.RoleMarketing)
	// AnyActiveMember admits every active member regardless of role.
	AnyActiveMember domain.RoleSet
)

// Guard is the single gate in front of every tenant-scoped operation.
type Guard struct {
	Tokens  TokenVerifier
	Members MemberRepository
	Log     *logrus.Entry
}

func NewGuard(tokens TokenVerifier, members MemberRepository, log *logrus.Entry) *Guard {
	return &Guard{Tokens: tokens, Members: members, Log: log}
}

// Authorize walks token -> member -> active -> role and stops at the first failure.
func (g *Guard) Authorize(ctx context.Context, authorization string, allowed domain.RoleSet) (*domain.Principal, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	payload, err := g.Tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	member, err := g.Members.GetMember(ctx, payload.RestaurantID, payload.Subject)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	if !member.IsActive {
		return nil, domain.ErrInactiveMember
	}
	if !allowed.Allows(member.RoleName) {
		if g.Log != nil {
			g.Log.WithFields(logrus.Fields{
				"member_id":     member.ID,
				"restaurant_id": member.RestaurantID,
				"role":          member.RoleName,
			}).Debug("role not permitted")
		}
		return nil, domain.ErrRoleNotPermitted
	}

	return &domain.Principal{TokenPayload: payload, Member: member}, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
