package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type RegisterUserRequest struct {
	UserEmail      string     `json:"user_email" validate:"required,email"`
	UserName       string     `json:"user_name" validate:"required,min=2,max=50"`
	UserPassword   string     `json:"user_password" validate:"required,min=8"`
	UserRole       string     `json:"user_role" validate:"required,oneof=admin staff"`
	UserMinistryID *uuid.UUID `json:"user_ministry_id" validate:"omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UserResponse struct {
	UserID         uuid.UUID  `json:"user_id"`
	UserEmail      string     `json:"user_email"`
	UserName       string     `json:"user_name"`
	UserRole       string     `json:"user_role"`
	UserMinistryID *uuid.UUID `json:"user_ministry_id,omitempty"`
	UserIsActive   bool       `json:"user_is_active"`
	UserCreatedAt  time.Time  `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUserModel(mdl m.UserModel) UserResponse {
	return UserResponse{
		UserID:         mdl.UserID,
		UserEmail:      mdl.UserEmail,
		UserName:       mdl.UserName,
		UserRole:       mdl.UserRole,
		UserMinistryID: mdl.UserMinistryID,
		UserIsActive:   mdl.UserIsActive,
		UserCreatedAt:  mdl.UserCreatedAt,
	}
}
