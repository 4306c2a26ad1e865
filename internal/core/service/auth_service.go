package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// AuthConfig holds the token settings for AuthService.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	ResetTTL  time.Duration
	// PublicURL prefixes the reset links sent to users.
	PublicURL string
}

// AuthService implements signup, login and password reset.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.ResetTokenStore
	notifier ports.ResetNotifier
	cfg      AuthConfig
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.ResetTokenStore,
	notifier ports.ResetNotifier,
	cfg AuthConfig,
	logger zerolog.Logger,
) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 30 * time.Minute
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.ToLower(in.Email),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by email, username and password. All three must match
// the same account; any mismatch yields domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, username, password string) (string, *domain.User, error) {
	if email == "" || username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Username != username {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// RequestPasswordReset issues a single-use token and hands the reset link to
// the notifier.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, user.ID, s.cfg.ResetTTL); err != nil {
		return err
	}

	link := strings.TrimRight(s.cfg.PublicURL, "/") + "/auth/password-reset/" + token
	if err := s.notifier.NotifyPasswordReset(ctx, user, link); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}
	userID, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("password reset")
	return nil
}

func (s *AuthService) Profile(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      s.now().Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}
