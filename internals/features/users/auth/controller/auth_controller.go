package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swaram_backend/internals/features/users/auth/dto"
	"swaram_backend/internals/features/users/auth/model"
	"swaram_backend/internals/features/users/auth/service"
	helper "swaram_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Register (POST /auth/register)
// -----------------------------------------
func (h *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	u, err := service.Register(c.UserContext(), h.DB, in.Name, in.Email, in.Password)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return fiberOrInternal(c, err)
	}
	return helper.JsonCreated(c, "registered", dto.ToUserResponse(u))
}

// -----------------------------------------
// Login (POST /auth/login)
// -----------------------------------------
func (h *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	u, err := service.Authenticate(c.UserContext(), h.DB, in.Email, in.Password)
	if err != nil {
		return fiberOrInternal(c, err)
	}
	return issueTokens(c, u)
}

// -----------------------------------------
// Google sign-in (POST /auth/google)
// -----------------------------------------
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var in dto.GoogleLoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	u, err := service.AuthenticateGoogle(c.UserContext(), h.DB, in.IDToken)
	if err != nil {
		return fiberOrInternal(c, err)
	}
	return issueTokens(c, u)
}

// -----------------------------------------
// Refresh (POST /auth/refresh)
// -----------------------------------------
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	userID, err := service.ParseRefreshToken(in.RefreshToken)
	if err != nil {
		return fiberOrInternal(c, err)
	}
	u, err := service.GetUserByID(c.UserContext(), h.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user no longer exists")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return issueTokens(c, u)
}

// -----------------------------------------
// Logout (POST /auth/logout)
// -----------------------------------------
// Tokens are stateless JWTs, so logout expires the auth cookies the
// browser flow relies on. Idempotent: safe to call without a session.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	expired := time.Now().UTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
	return helper.JsonOK(c, "logged out", nil)
}

// -----------------------------------------
// Me (GET /auth/me) — requires AuthJWT
// -----------------------------------------
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	u, err := service.GetUserByID(c.UserContext(), h.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(u))
}

func issueTokens(c *fiber.Ctx, u model.User) error {
	access, refresh, err := service.IssueTokenPair(u)
	if err != nil {
		return fiberOrInternal(c, err)
	}
	return helper.JsonOK(c, "logged in", dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(u),
	})
}

// fiberOrInternal keeps *fiber.Error statuses (401/403 from the service
// layer) and downgrades everything else to a 500 envelope.
func fiberOrInternal(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
