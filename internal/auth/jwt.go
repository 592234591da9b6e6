// Package auth mints and verifies the bearer tokens that identify attendees
// and gate operators.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
)

const issuer = "fairplay-booth"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	key   []byte
	ttl   time.Duration
	clock clock.Clock
}

func NewTokens(key []byte, ttl time.Duration, clk clock.Clock) (*Tokens, error) {
	if len(key) == 0 {
		return nil, errors.New("empty signing key")
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Tokens{key: key, ttl: ttl, clock: clk}, nil
}

func (t *Tokens) Issue(actor domain.Actor) (string, error) {
	now := t.clock.Now()
	claims := &Claims{
		Name: actor.Name,
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  actor.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Parse(tokenStr string) (domain.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil || !token.Valid {
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return domain.Actor{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if claims.Role != domain.RoleAttendee && claims.Role != domain.RoleOperator {
		return domain.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return domain.Actor{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
