package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys hydrated by AuthJWT
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "user_role"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // read the access_token cookie when no Bearer header is present
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token from Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		// user_id: id/sub/user_id in order of preference, must be a UUID
		id := strClaim(claims, "id")
		if id == "" {
			id = strClaim(claims, "sub")
		}
		if id == "" {
			id = strClaim(claims, "user_id")
		}
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID")
		}
		c.Locals(LocUserID, id)

		if v := strClaim(claims, "user_name"); v != "" {
			c.Locals(LocUserName, v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals(LocUserRole, v)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
