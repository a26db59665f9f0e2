package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"buildboard/internal/models"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
)

type record struct {
	user models.User
	hash string
}

// Store keeps user accounts in memory, keyed by username. It is the only
// shared mutable state in the process; every mutation runs under one
// mutex so concurrent registrations cannot both claim a username.
type Store struct {
	mu    sync.RWMutex
	users map[string]record
}

// NewStore builds a store seeded with the two default accounts.
func NewStore() *Store {
	s := &Store{users: make(map[string]record)}
	s.seed("admin", "admin@example.com", models.RoleAdmin, "admin123")
	s.seed("user", "user@example.com", models.RoleUser, "user123")
	return s
}

func (s *Store) seed(username, email, role, password string) {
	hash, err := HashPassword(password)
	if err != nil {
		return
	}
	s.users[username] = record{
		user: models.User{
			ID:       uuid.NewString(),
			Username: username,
			Email:    email,
			Role:     role,
		},
		hash: hash,
	}
}

// Register creates a new account with role "user". The duplicate check
// and the insert share one critical section.
func (s *Store) Register(username, email, password string) (models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return models.User{}, ErrDuplicateUsername
	}
	u := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Role:     models.RoleUser,
	}
	s.users[username] = record{user: u, hash: hash}
	return u, nil
}

// Authenticate checks a username/password pair against the store.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	rec, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := CheckPassword(rec.hash, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return rec.user, nil
}

// Get looks up a user by username.
func (s *Store) Get(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[username]
	return rec.user, ok
}

// Count reports how many accounts exist.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
