// Package servicetoken mints short-lived bearer tokens that identify this
// service to the Student API.
package servicetoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Audience is the audience claim expected by the Student API.
const Audience = "student-api"

// Config defines how service tokens are signed.
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// Minter signs HS256 tokens for outbound API calls.
type Minter struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New builds a minter. An empty secret yields a nil minter, which callers
// treat as anonymous access.
func New(cfg Config) (*Minter, error) {
	if len(cfg.Secret) == 0 {
		return nil, nil
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		return nil, errors.New("service token issuer is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("service token ttl must be positive, got %s", cfg.TTL)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Minter{secret: cfg.Secret, issuer: issuer, ttl: cfg.TTL, now: now}, nil
}

// Token signs a fresh token.
func (m *Minter) Token() (string, error) {
	if m == nil {
		return "", errors.New("service token minter is not configured")
	}
	issuedAt := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   m.issuer,
		Audience:  jwt.ClaimStrings{Audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign service token: %w", err)
	}
	return signed, nil
}

// Verify parses a token signed with cfg and checks its issuer and audience.
func Verify(token string, cfg Config) (jwt.RegisteredClaims, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (any, error) {
		return cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(Audience),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return jwt.RegisteredClaims{}, fmt.Errorf("verify service token: %w", err)
	}
	return claims, nil
}
