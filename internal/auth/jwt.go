package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"legaldocs/internal/config"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the access token claims the registry reads.
type Claims struct {
	PreferredUsername string `json:"preferred_username,omitempty"`
	Name              string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Username returns the best human-readable identity in the token.
func (c *Claims) Username() string {
	if c.PreferredUsername != "" {
		return c.PreferredUsername
	}
	if c.Name != "" {
		return c.Name
	}
	return c.Subject
}

// Validator verifies bearer tokens signed with a single key.
type Validator struct {
	key     any
	methods []string
	opts    []jwt.ParserOption
}

// NewValidator builds a Validator from cfg: an RS256 public key when
// PublicKey is set, otherwise an HS256 shared secret.
func NewValidator(cfg config.AuthConfig) (*Validator, error) {
	v := &Validator{}
	switch {
	case cfg.PublicKey != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("parse jwt public key: %w", err)
		}
		v.key = key
		v.methods = []string{jwt.SigningMethodRS256.Alg()}
	case cfg.Secret != "":
		v.key = []byte(cfg.Secret)
		v.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, errors.New("jwt secret or public key is required")
	}

	v.opts = []jwt.ParserOption{jwt.WithValidMethods(v.methods), jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		v.opts = append(v.opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		v.opts = append(v.opts, jwt.WithAudience(cfg.Audience))
	}
	return v, nil
}

// Validate parses and verifies tokenString.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, v.opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
