package service

import (
	"context"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swaram_backend/internals/configs"
	"swaram_backend/internals/features/users/auth/model"
)

const qryTimeout = 1200 * time.Millisecond

/* ==========================
   Password login
========================== */

// Authenticate checks email + password and returns the user with role preloaded.
func Authenticate(ctx context.Context, db *gorm.DB, email, password string) (model.User, error) {
	var u model.User

	qctx, cancel := context.WithTimeout(ctx, qryTimeout)
	defer cancel()

	err := db.WithContext(qctx).
		Preload("Role").
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return u, err
	}

	if !u.IsActive {
		return u, fiber.NewError(fiber.StatusForbidden, "Account has been deactivated")
	}
	if !u.CheckPassword(password) {
		return u, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	return u, nil
}

/* ==========================
   Google sign-in
========================== */

// AuthenticateGoogle verifies a Google ID token and returns the matching
// user, creating one on first sign-in.
func AuthenticateGoogle(ctx context.Context, db *gorm.DB, idToken string) (model.User, error) {
	var u model.User

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return u, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return u, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claimSet.Email == "" {
		return u, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token payload")
	}

	qctx, cancel := context.WithTimeout(ctx, qryTimeout)
	defer cancel()

	err = db.WithContext(qctx).
		Preload("Role").
		Where("LOWER(email) = ?", strings.ToLower(claimSet.Email)).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = model.User{
			Name:  claimSet.Name,
			Email: strings.ToLower(claimSet.Email),
		}
		if claimSet.Picture != "" {
			pic := claimSet.Picture
			u.AvatarURL = &pic
		}
		if err := db.WithContext(qctx).Create(&u).Error; err != nil {
			return u, err
		}
		return u, nil
	}
	if err != nil {
		return u, err
	}
	if !u.IsActive {
		return u, fiber.NewError(fiber.StatusForbidden, "Account has been deactivated")
	}
	return u, nil
}

/* ==========================
   Registration
========================== */

// Register creates a user with a bcrypt-hashed password.
func Register(ctx context.Context, db *gorm.DB, name, email, password string) (model.User, error) {
	u := model.User{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := u.SetPassword(password); err != nil {
		return u, err
	}

	qctx, cancel := context.WithTimeout(ctx, qryTimeout)
	defer cancel()

	if err := db.WithContext(qctx).Create(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

// GetUserByID loads a user with role preloaded.
func GetUserByID(ctx context.Context, db *gorm.DB, id string) (model.User, error) {
	var u model.User
	qctx, cancel := context.WithTimeout(ctx, qryTimeout)
	defer cancel()
	err := db.WithContext(qctx).Preload("Role").Where("id = ?", id).First(&u).Error
	return u, err
}
