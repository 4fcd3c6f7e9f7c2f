package service

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	RestaurantID string `json:"restaurantId"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	Issue(payload domain.TokenPayload) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (domain.TokenPayload, error)
}

// TokenManager signs session tokens with RS256. Verification only needs the public key.
type TokenManager struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenManager(private *rsa.PrivateKey, public *rsa.PublicKey, ttl time.Duration) *TokenManager {
	return &TokenManager{private: private, public: public, ttl: ttl, now: time.Now}
}

// NewTokenManagerFromBase64 accepts base64-encoded PEM keys as stored in the environment.
func NewTokenManagerFromBase64(privateB64, publicB64 string, ttl time.Duration) (*TokenManager, error) {
	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return NewTokenManager(private, public, ttl), nil
}

func (m *TokenManager) Issue(payload domain.TokenPayload) (string, error) {
	if m.private == nil {
		return "", errors.New("token manager has no signing key")
	}
	now := m.now()
	claims := Claims{
		RestaurantID: payload.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.private)
}

func (m *TokenManager) Verify(token string) (domain.TokenPayload, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.public, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.RestaurantID == "" {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}
	return domain.TokenPayload{Subject: claims.Subject, RestaurantID: claims.RestaurantID}, nil
}

var (
	_ TokenIssuer   = (*TokenManager)(nil)
	_ TokenVerifier = (*TokenManager)(nil)
)
