package service_test

import (
	"context"
	"testing"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const otherMemberID = "f0000000-0000-0000-0000-000000000008"

func TestUpdateMember(t *testing.T) {
	hash, err := service.HashPassword("old-secret")
	require.NoError(t, err)
	stored := func() *domain.Member {
		return &domain.Member{
			ID: otherMemberID, RestaurantID: restaurantA, RoleID: "role-mkt", RoleName: domain.RoleMarketing,
			Name: "Nina", Email: "nina@bistro.com", PasswordHash: hash, IsActive: true,
		}
	}

	tests := []struct {
		name    string
		in      service.UpdateMemberInput
		prepare func(members *mocks.MemberRepository, roles *mocks.RoleRepository)
		audited bool
		wantErr error
	}{
		{
			name: "wrong current password",
			in:   service.UpdateMemberInput{CurrentPassword: "guess", NewPassword: "new-secret"},
			prepare: func(members *mocks.MemberRepository, _ *mocks.RoleRepository) {
				members.On("GetMember", mock.Anything, restaurantA, otherMemberID).Return(stored(), nil).Once()
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "new password without current password",
			in:   service.UpdateMemberInput{NewPassword: "new-secret"},
			prepare: func(members *mocks.MemberRepository, _ *mocks.RoleRepository) {
				members.On("GetMember", mock.Anything, restaurantA, otherMemberID).Return(stored(), nil).Once()
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "email taken by a colleague",
			in:   service.UpdateMemberInput{Email: "Ana@Bistro.com"},
			prepare: func(members *mocks.MemberRepository, _ *mocks.RoleRepository) {
				members.On("GetMember", mock.Anything, restaurantA, otherMemberID).Return(stored(), nil).Once()
				members.On("GetMemberByEmail", mock.Anything, restaurantA, "ana@bistro.com").
					Return(&domain.Member{ID: memberID}, nil).Once()
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "unknown role",
			in:   service.UpdateMemberInput{RoleID: "missing"},
			prepare: func(members *mocks.MemberRepository, roles *mocks.RoleRepository) {
				members.On("GetMember", mock.Anything, restaurantA, otherMemberID).Return(stored(), nil).Once()
				roles.On("GetRole", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "promotion with password change",
			in: service.UpdateMemberInput{
				Name: "Nina Souza", RoleID: "role-mgr", CurrentPassword: "old-secret", NewPassword: "new-secret",
			},
			prepare: func(members *mocks.MemberRepository, roles *mocks.RoleRepository) {
				members.On("GetMember", mock.Anything, restaurantA, otherMemberID).Return(stored(), nil).Once()
				roles.On("GetRole", mock.Anything, "role-mgr").
					Return(&domain.Role{ID: "role-mgr", Name: domain.RoleManager}, nil).Once()
				members.On("UpdateMember", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
					return m.Name == "Nina Souza" && m.RoleID == "role-mgr" &&
						m.Email == "nina@bistro.com" && service.CheckPassword(m.PasswordHash, "new-secret")
				})).Return(nil).Once()
			},
			audited: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			members := mocks.NewMemberRepository(t)
			roles := mocks.NewRoleRepository(t)
			testCase.prepare(members, roles)
			audit := silentAudit(t)
			if testCase.audited {
				audit = auditExpecting(t, domain.LogUpdate, domain.EntityMember)
			}
			svc := service.NewMemberService(members, roles, audit)

			err := svc.Update(context.Background(), principal(domain.RoleAdmin), otherMemberID, testCase.in)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateMember(t *testing.T) {
	members := mocks.NewMemberRepository(t)
	roles := mocks.NewRoleRepository(t)
	roles.On("GetRole", mock.Anything, "role-mkt").Return(&domain.Role{ID: "role-mkt", Name: domain.RoleMarketing}, nil).Once()
	members.On("GetMemberByEmail", mock.Anything, restaurantA, "nina@bistro.com").Return(nil, domain.ErrNotFound).Once()
	members.On("CreateMember", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
		return m.RestaurantID == restaurantA && m.IsActive && m.RoleName == domain.RoleMarketing &&
			service.CheckPassword(m.PasswordHash, "secret123")
	})).Return(nil).Once()
	svc := service.NewMemberService(members, roles, auditExpecting(t, domain.LogCreate, domain.EntityMember))

	m, err := svc.Create(context.Background(), principal(domain.RoleManager), service.NewMemberInput{
		Name: "Nina", Email: "NINA@bistro.com", Password: "secret123", RoleID: "role-mkt",
	})
	require.NoError(t, err)
	assert.Equal(t, "nina@bistro.com", m.Email)
}

func TestCreateMemberDuplicateEmail(t *testing.T) {
	members := mocks.NewMemberRepository(t)
	roles := mocks.NewRoleRepository(t)
	roles.On("GetRole", mock.Anything, "role-mkt").Return(&domain.Role{ID: "role-mkt", Name: domain.RoleMarketing}, nil).Once()
	members.On("GetMemberByEmail", mock.Anything, restaurantA, "nina@bistro.com").Return(&domain.Member{ID: otherMemberID}, nil).Once()
	svc := service.NewMemberService(members, roles, silentAudit(t))

	_, err := svc.Create(context.Background(), principal(domain.RoleAdmin), service.NewMemberInput{
		Name: "Nina", Email: "nina@bistro.com", Password: "secret123", RoleID: "role-mkt",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
