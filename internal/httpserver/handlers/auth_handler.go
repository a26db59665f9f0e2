package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"buildboard/internal/auth"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(svc *auth.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username and password are required")
			return
		}
		result, err := svc.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				respondError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			lg.Errorw("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Login failed")
			return
		}
		lg.Infow("user logged in", "username", req.Username)
		respondMessage(w, http.StatusOK, result, "Login successful")
	}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(svc *auth.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username, email, and password are required")
			return
		}
		user, err := svc.Register(req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrDuplicateUsername) {
				respondError(w, http.StatusBadRequest, "Username already exists")
				return
			}
			lg.Errorw("registration failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Registration failed")
			return
		}
		lg.Infow("user registered", "username", user.Username)
		respondMessage(w, http.StatusCreated, user, "Registration successful")
	}
}

func Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := auth.FromContext(r.Context())
		if c == nil {
			respondError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}
		respondData(w, http.StatusOK, map[string]string{
			"id":       c.UserID,
			"username": c.Username,
			"role":     c.Role,
		})
	}
}

func Refresh(svc *auth.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := auth.FromContext(r.Context())
		if c == nil {
			respondError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}
		result, err := svc.Refresh(c)
		if err != nil {
			lg.Errorw("token refresh failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to refresh token")
			return
		}
		respondData(w, http.StatusOK, result)
	}
}
