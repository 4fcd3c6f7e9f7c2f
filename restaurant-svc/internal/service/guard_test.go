package service_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
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

func TestTokenManagerRoundTrip(t *testing.T) {
	tokens := newTokens(t, time.Hour)

	token, err := tokens.Issue(domain.TokenPayload{Subject: memberID, RestaurantID: restaurantA})
	require.NoError(t, err)

	payload, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, memberID, payload.Subject)
	assert.Equal(t, restaurantA, payload.RestaurantID)
}

func TestTokenManagerRejects(t *testing.T) {
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	foreign := service.NewTokenManager(otherKey, &otherKey.PublicKey, time.Hour)
	expired := newTokens(t, -time.Minute)
	verifier := newTokens(t, time.Hour)

	foreignToken, err := foreign.Issue(domain.TokenPayload{Subject: memberID, RestaurantID: restaurantA})
	require.NoError(t, err)
	expiredToken, err := expired.Issue(domain.TokenPayload{Subject: memberID, RestaurantID: restaurantA})
	require.NoError(t, err)
	noTenant, err := verifier.Issue(domain.TokenPayload{Subject: memberID})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":         "not.a.jwt",
		"foreign key":     foreignToken,
		"expired":         expiredToken,
		"missing tenant":  noTenant,
		"unsigned header": "eyJhbGciOiJub25lIn0.eyJzdWIiOiJ4In0.",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestGuardAuthorize(t *testing.T) {
	tokens := newTokens(t, time.Hour)
	issue := func(restaurantID string) string {
		token, err := tokens.Issue(domain.TokenPayload{Subject: memberID, RestaurantID: restaurantID})
		require.NoError(t, err)
		return "Bearer " + token
	}
	member := func(role string, active bool) *domain.Member {
		return &domain.Member{ID: memberID, RestaurantID: restaurantA, RoleName: role, IsActive: active}
	}

	tests := []struct {
		name          string
		header        string
		allowed       domain.RoleSet
		prepare       func(members *mocks.MemberRepository)
		wantErr       error
		wantPrincipal bool
	}{
		{
			name:    "missing header",
			header:  "",
			allowed: service.ManagementRoles,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			allowed: service.ManagementRoles,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "malformed token",
			header:  "Bearer abc",
			allowed: service.ManagementRoles,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "member of another tenant",
			header:  issue(restaurantB),
			allowed: service.ManagementRoles,
			prepare: func(members *mocks.MemberRepository) {
				members.On("GetMember", mock.Anything, restaurantB, memberID).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "inactive member",
			header:  issue(restaurantA),
			allowed: service.AnyActiveMember,
			prepare: func(members *mocks.MemberRepository) {
				members.On("GetMember", mock.Anything, restaurantA, memberID).Return(member(domain.RoleAdmin, false), nil).Once()
			},
			wantErr: domain.ErrInactiveMember,
		},
		{
			name:    "marketing cannot manage categories",
			header:  issue(restaurantA),
			allowed: service.ManagementRoles,
			prepare: func(members *mocks.MemberRepository) {
				members.On("GetMember", mock.Anything, restaurantA, memberID).Return(member(domain.RoleMarketing, true), nil).Once()
			},
			wantErr: domain.ErrRoleNotPermitted,
		},
		{
			name:    "marketing can edit menu items",
			header:  issue(restaurantA),
			allowed: service.MenuEditorRoles,
			prepare: func(members *mocks.MemberRepository) {
				members.On("GetMember", mock.Anything, restaurantA, memberID).Return(member(domain.RoleMarketing, true), nil).Once()
			},
			wantPrincipal: true,
		},
		{
			name:    "any active member",
			header:  "bearer  " + issue(restaurantA)[len("Bearer "):],
			allowed: service.AnyActiveMember,
			prepare: func(members *mocks.MemberRepository) {
				members.On("GetMember", mock.Anything, restaurantA, memberID).Return(member("Cozinha", true), nil).Once()
			},
			wantPrincipal: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			members := mocks.NewMemberRepository(t)
			if testCase.prepare != nil {
				testCase.prepare(members)
			}
			log, _ := nullLog()
			guard := service.NewGuard(tokens, members, log)

			p, err := guard.Authorize(context.Background(), testCase.header, testCase.allowed)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.True(t, testCase.wantPrincipal)
			assert.Equal(t, restaurantA, p.RestaurantID)
			assert.Equal(t, memberID, p.Member.ID)
		})
	}
}

func TestGuardRepositoryFailure(t *testing.T) {
	tokens := newTokens(t, time.Hour)
	token, err := tokens.Issue(domain.TokenPayload{Subject: memberID, RestaurantID: restaurantA})
	require.NoError(t, err)

	members := mocks.NewMemberRepository(t)
	members.On("GetMember", mock.Anything, restaurantA, memberID).Return(nil, errors.New("db down")).Once()
	log, _ := nullLog()

	_, err = service.NewGuard(tokens, members, log).Authorize(context.Background(), "Bearer "+token, service.AnyActiveMember)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "db down")
}

func TestRoleSets(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleManager, domain.RoleTechnicalSupport} {
		assert.True(t, service.ManagementRoles.Allows(role), role)
		assert.True(t, service.MenuEditorRoles.Allows(role), role)
	}
	assert.False(t, service.ManagementRoles.Allows(domain.RoleMarketing))
	assert.True(t, service.MenuEditorRoles.Allows(domain.RoleMarketing))
	assert.True(t, service.AnyActiveMember.Allows("anything"))
}
