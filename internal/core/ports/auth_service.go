package ports

import (
	"context"
	"time"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// RegisterInput carries the signup form values.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login requires the email and username to belong to the same account.
	Login(ctx context.Context, email, username, password string) (string, *domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, username string) (*domain.User, error)
}

// ResetTokenStore keeps single-use password reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the owning user ID and deletes the token.
	// Unknown or expired tokens yield domain.ErrInvalidResetToken.
	Consume(ctx context.Context, token string) (string, error)
}

// ResetNotifier delivers a password reset link to the user.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, user *domain.User, resetURL string) error
}
