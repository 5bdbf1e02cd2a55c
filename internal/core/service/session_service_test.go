package service

import (
	"context"
	"testing"
	"time"

	"github.com/finhub/console/internal/core/domain"
)

func TestSessionService_Current_MissLoadsAndCaches(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Username: "ana", Role: "finance_admin", IsActive: true})
	cache := newStubSessionCache()
	svc := NewSessionService(repo, cache, time.Minute, discardLogger)

	cu, err := svc.Current(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if cu.Role != domain.RoleFinanceManager {
		t.Fatalf("expected normalized role, got %s", cu.Role)
	}
	if _, ok := cache.entries["u1"]; !ok {
		t.Fatalf("expected entry to be cached")
	}

	if _, err := svc.Current(context.Background(), "u1"); err != nil {
		t.Fatalf("second Current returned error: %v", err)
	}
	if repo.findByID != 1 {
		t.Fatalf("expected one repository read, got %d", repo.findByID)
	}
}

func TestSessionService_Current_CacheOutageFallsBack(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Role: domain.RoleAdmin, IsActive: true})
	cache := newStubSessionCache()
	cache.getErr = errCacheDown
	svc := NewSessionService(repo, cache, time.Minute, discardLogger)

	cu, err := svc.Current(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected fallback to repository, got %v", err)
	}
	if cu.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role %s", cu.Role)
	}
}

func TestSessionService_Current_UnknownUser(t *testing.T) {
	svc := NewSessionService(newStubUserRepo(), newStubSessionCache(), time.Minute, discardLogger)

	if _, err := svc.Current(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Current(context.Background(), ""); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_WithoutCache(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Role: domain.RoleManager, IsActive: true})
	svc := NewSessionService(repo, nil, 0, discardLogger)

	if _, err := svc.Current(context.Background(), "u1"); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if err := svc.Invalidate(context.Background(), "u1"); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}
}
