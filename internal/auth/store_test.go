package auth

import (
	"errors"
	"sync"
	"testing"
	"time"

	"buildboard/internal/models"
)

func TestSeededAdminLogin(t *testing.T) {
	svc := NewService(NewStore(), "secret", 7*24*time.Hour)
	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	claims, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Username != "admin" || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginErrorsDoNotRevealAccounts(t *testing.T) {
	store := NewStore()
	_, unknownErr := store.Authenticate("nobody", "whatever")
	_, wrongErr := store.Authenticate("admin", "whatever")
	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected identical credential errors, got %v and %v", unknownErr, wrongErr)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store := NewStore()
	before := store.Count()
	if _, err := store.Register("admin", "dup@example.com", "pw123456"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if store.Count() != before {
		t.Fatalf("failed registration must not mutate the store")
	}
}

func TestRegisterAssignsUserRole(t *testing.T) {
	store := NewStore()
	u, err := store.Register("dev", "dev@example.com", "pw123456")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if u.Role != models.RoleUser || u.ID == "" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if _, err := store.Authenticate("dev", "pw123456"); err != nil {
		t.Fatalf("new account should authenticate: %v", err)
	}
}

func TestConcurrentRegistrationKeepsUsernameUnique(t *testing.T) {
	store := NewStore()
	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Register("race", "race@example.com", "pw123456")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, ErrDuplicateUsername) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", wins)
	}
}
