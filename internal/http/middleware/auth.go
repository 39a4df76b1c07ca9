package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"legaldocs/internal/auth"
)

// ClaimsLocalKey is the Fiber locals key holding the caller's *auth.Claims.
const ClaimsLocalKey = "claims"

// TokenValidator verifies a raw bearer token.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Auth rejects requests without a valid "Authorization: Bearer" token with
// 401 and stores the claims in locals for downstream handlers.
func Auth(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := v.Validate(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by Auth, or nil.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims
}
