package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
)

// ErrNoSigningKey is returned instead of signing a token with an empty key.
var ErrNoSigningKey = errors.New("jwt signing key is empty")

// AuthService implements registration, login and logout.
type AuthService struct {
	repo      ports.UserRepository
	sessions  ports.SessionService
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionService, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates an active account through public self-registration. Every
// self-registered account gets domain.RoleDefault and no manager; asking for
// any other role is ErrForbidden. Elevated accounts are provisioned through
// UserService.Create and roles change through UserService.AssignRole.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := parseRoleOrDefault(input.Role)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleDefault {
		s.logger.Warn().Str("role", role.String()).Msg("self-registration requested an elevated role")
		return nil, domain.ErrForbidden
	}

	user, err := newAccount(input.Username, input.Email, input.Password, role, "")
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

// Login verifies credentials and issues a session token. The current user is
// written to the session cache so the first gated render needs no lookup.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if s.sessions != nil {
		if _, err := s.sessions.Current(ctx, user.ID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("session warm-up failed")
		}
	}

	return token, user, nil
}

// Logout discards the cached current user.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Invalidate(ctx, userID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	if s.jwtSecret == "" {
		return "", ErrNoSigningKey
	}
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(domain.NormalizeRole(string(user.Role))),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
