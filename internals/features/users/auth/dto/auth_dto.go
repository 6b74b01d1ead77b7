package dto

import (
	"github.com/google/uuid"

	"swaram_backend/internals/features/users/auth/model"
)

// =========================
// Request DTOs
// =========================

type RegisterDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginDTO struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// =========================
// Response DTOs
// =========================

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role,omitempty"`
	IsActive  bool      `json:"is_active"`
}

type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// =========================
// Mappers
// =========================

func ToUserResponse(u model.User) UserResponse {
	out := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
	}
	if u.Role != nil && u.Role.Name != nil {
		out.Role = *u.Role.Name
	}
	return out
}
