package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type CredentialServiceInterface interface {
	SignUp(ctx context.Context, name, email, password string) (*domain.Restaurant, error)
	AuthenticateRestaurant(ctx context.Context, email, password string) (*domain.Session, error)
	AuthenticateMember(ctx context.Context, email, password, restaurantID string) (*domain.Session, error)
	AuthenticateMemberFederated(ctx context.Context, email, restaurantID string) (*domain.Session, error)
	SignInWithIDToken(ctx context.Context, idToken, restaurantID string) (*domain.Session, error)
	FederatedEnabled() bool
}

type CredentialService struct {
	Restaurants RestaurantRepository
	Members     MemberRepository
	Tokens      TokenIssuer
	Identity    IdentityVerifier
	Audit       *AuditWriter
	Log         *logrus.Entry
}

func NewCredentialService(restaurants RestaurantRepository, members MemberRepository, tokens TokenIssuer,
	identity IdentityVerifier, audit *AuditWriter, log *logrus.Entry) *CredentialService {
	return &CredentialService{
		Restaurants: restaurants,
		Members:     members,
		Tokens:      tokens,
		Identity:    identity,
		Audit:       audit,
		Log:         log,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return hash != "" && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the restaurant together with an active Admin member that
// shares its name, email and password.
func (s *CredentialService) SignUp(ctx context.Context, name, email, password string) (*domain.Restaurant, error) {
	email = normalizeEmail(email)
	_, err := s.Restaurants.GetRestaurantByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: restaurant email", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	rest := &domain.Restaurant{Name: strings.TrimSpace(name), Email: email, PasswordHash: hash}
	owner := &domain.Member{Name: rest.Name, Email: email, PasswordHash: hash}
	if err := s.Restaurants.CreateRestaurantWithOwner(ctx, rest, owner); err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, domain.LogEntry{
		RestaurantID:   rest.ID,
		MemberID:       owner.ID,
		Event:          "Restaurant created",
		Description:    fmt.Sprintf("restaurant %s signed up", rest.Name),
		LogType:        domain.LogCreate,
		AffectedEntity: domain.EntityRestaurant,
		AffectedID:     rest.ID,
	})
	return rest, nil
}

func (s *CredentialService) AuthenticateRestaurant(ctx context.Context, email, password string) (*domain.Session, error) {
	rest, err := s.Restaurants.GetRestaurantByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(rest.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Session{ID: rest.ID, Email: rest.Email, Name: rest.Name}, nil
}

func (s *CredentialService) AuthenticateMember(ctx context.Context, email, password, restaurantID string) (*domain.Session, error) {
	member, err := s.lookupMember(ctx, email, restaurantID)
	if err != nil {
		return nil, err
	}
	if !CheckPassword(member.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.startSession(ctx, member, "password")
}

// AuthenticateMemberFederated trusts that the caller already verified the
// external identity proof for email.
func (s *CredentialService) AuthenticateMemberFederated(ctx context.Context, email, restaurantID string) (*domain.Session, error) {
	member, err := s.lookupMember(ctx, email, restaurantID)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, member, "federated")
}

func (s *CredentialService) FederatedEnabled() bool {
	return s.Identity != nil
}

// SignInWithIDToken verifies a federated ID token and then signs the member in.
func (s *CredentialService) SignInWithIDToken(ctx context.Context, idToken, restaurantID string) (*domain.Session, error) {
	if s.Identity == nil {
		return nil, fmt.Errorf("%w: federated sign-in is disabled", domain.ErrNotFound)
	}
	email, err := s.Identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.Log.WithError(err).Info("federated token rejected")
		return nil, domain.ErrInvalidCredentials
	}
	return s.AuthenticateMemberFederated(ctx, email, restaurantID)
}

func (s *CredentialService) lookupMember(ctx context.Context, email, restaurantID string) (*domain.Member, error) {
	member, err := s.Members.GetMemberByEmail(ctx, restaurantID, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *CredentialService) startSession(ctx context.Context, member *domain.Member, method string) (*domain.Session, error) {
	token, err := s.Tokens.Issue(domain.TokenPayload{Subject: member.ID, RestaurantID: member.RestaurantID})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.Audit.Record(ctx, domain.LogEntry{
		RestaurantID:   member.RestaurantID,
		MemberID:       member.ID,
		Event:          "Member signed in",
		Description:    fmt.Sprintf("%s signed in (%s)", member.Email, method),
		LogType:        domain.LogLogin,
		AffectedEntity: domain.EntityMember,
		AffectedID:     member.ID,
	})
	return &domain.Session{ID: member.ID, Email: member.Email, Name: member.Name, AccessToken: token}, nil
}
