package dto

import (
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
)

// UserResponse is the account view returned by registration and admin routes
type UserResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Role                string     `json:"role"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LockedAt            *time.Time `json:"locked_at,omitempty"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                  user.ID,
		Email:               user.Email,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Role:                user.Role,
		FailedLoginAttempts: user.FailedLoginAttempts,
		LockedAt:            user.LockedAt,
		LastLoginAt:         user.LastLoginAt,
		CreatedAt:           user.CreatedAt,
	}
}
