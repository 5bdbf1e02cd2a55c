package service

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/finhub/console/internal/core/domain"
)

// newAccount builds an active user with a bcrypt password hash.
func newAccount(username, email, password string, role domain.Role, managerID string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &domain.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
		ManagerID:    strings.TrimSpace(managerID),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// parseRoleOrDefault maps an empty role to domain.RoleDefault and rejects
// anything outside the closed set.
func parseRoleOrDefault(raw string) (domain.Role, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.RoleDefault, nil
	}
	return domain.ParseRole(raw)
}
