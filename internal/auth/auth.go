// Package auth issues and verifies the bearer tokens that identify callers.
// A token names the user and whether it may act as game master.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// DefaultTTL is how long issued tokens stay valid
const DefaultTTL = 7 * 24 * time.Hour

// Claims carried by a lootsheet token
type Claims struct {
	UserID string `json:"uid"`
	GM     bool   `json:"gm,omitempty"`
	jwt.RegisteredClaims
}

// Config holds the signing settings
type Config struct {
	Secret string
	// TTL defaults to DefaultTTL
	TTL time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

// Validate ensures the signing settings are usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Secret", c.Secret, vb)
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

// Issuer signs and parses HS256 tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an issuer
func NewIssuer(cfg *Config) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: []byte(cfg.Secret), ttl: ttl, now: now}, nil
}

// Issue signs a token for userID
func (i *Issuer) Issue(userID string, gm bool) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.InvalidArgument("user id is required")
	}

	now := i.now()
	claims := &Claims{
		UserID: userID,
		GM:     gm,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Parse verifies raw and returns its claims
func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, errors.Unauthenticated("invalid token: " + err.Error())
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.Unauthenticated("invalid token")
	}
	return claims, nil
}

// ParseBearer verifies an authorization header value
func (i *Issuer) ParseBearer(header string) (*Claims, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, errors.Unauthenticated("missing bearer token")
	}
	return i.Parse(strings.TrimSpace(raw))
}

type claimsKey struct{}

// WithClaims returns ctx carrying claims
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// FromContext returns the caller claims, Unauthenticated when absent
func FromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, errors.Unauthenticated("no caller identity")
	}
	return claims, nil
}
