package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.UserID,
		UserName:  m.UserName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
