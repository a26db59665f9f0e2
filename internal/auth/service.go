package auth

import (
	"time"

	"buildboard/internal/models"
)

// Service issues and refreshes tokens against the credential store.
type Service struct {
	store  *Store
	secret string
	ttl    time.Duration
}

func NewService(store *Store, secret string, ttl time.Duration) *Service {
	return &Service{store: store, secret: secret, ttl: ttl}
}

// LoginResult is handed back on successful login or refresh.
// ExpiresIn is in seconds.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expiresIn"`
	User      models.User `json:"user"`
}

// Login authenticates the credentials and issues a fresh token.
func (s *Service) Login(username, password string) (LoginResult, error) {
	u, err := s.store.Authenticate(username, password)
	if err != nil {
		return LoginResult{}, err
	}
	token, err := Sign(s.secret, s.ttl, u)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresIn: int64(s.ttl.Seconds()), User: u}, nil
}

// Register creates an account. The plaintext password is hashed by the
// store and never retained.
func (s *Service) Register(username, email, password string) (models.User, error) {
	return s.store.Register(username, email, password)
}

// Refresh issues a new token carrying the same claims.
func (s *Service) Refresh(c *Claims) (LoginResult, error) {
	u := models.User{ID: c.UserID, Username: c.Username, Role: c.Role}
	if stored, ok := s.store.Get(c.Username); ok {
		u = stored
	}
	token, err := Sign(s.secret, s.ttl, u)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresIn: int64(s.ttl.Seconds()), User: u}, nil
}

// Verify validates a raw bearer token.
func (s *Service) Verify(token string) (*Claims, error) {
	return Verify(s.secret, token)
}
