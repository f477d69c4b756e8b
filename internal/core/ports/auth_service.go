package ports

import (
	"context"

	"github.com/pizzahub/ordering-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Empty Name/Phone leave
// the current value untouched. Setting NewPassword requires CurrentPassword.
type UpdateProfileInput struct {
	UserID          int64
	Name            string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

type AuthService interface {
	// Register creates a customer account and returns a signed session token
	// alongside the stored user.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) error
}
