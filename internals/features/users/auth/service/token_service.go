package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"swaram_backend/internals/configs"
	"swaram_backend/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func buildClaims(u model.User, ttl time.Duration) jwt.MapClaims {
	role := ""
	if u.Role != nil && u.Role.Name != nil {
		role = *u.Role.Name
	}
	now := time.Now().UTC()
	return jwt.MapClaims{
		"id":        u.ID.String(),
		"user_name": u.Name,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
}

// IssueTokenPair signs an access + refresh token for the user.
func IssueTokenPair(u model.User) (access string, refresh string, err error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, accessTTLDefault)).
		SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, refreshTTLDefault)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseRefreshToken verifies a refresh token and returns the user id claim.
func ParseRefreshToken(raw string) (string, error) {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing user id claim")
	}
	return id, nil
}
