package http

import (
	"errors"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/meteomotto/go-weather-backend/internal/auth"
)

type Handler struct {
	authClient *fbauth.Client
	identity   *auth.IdentityClient
}

func NewHandler(authClient *fbauth.Client, identity *auth.IdentityClient) *Handler {
	return &Handler{authClient: authClient, identity: identity}
}

type credentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// RegisterUser creates a Firebase user from email and password.
// Validation failures are caught before any network call.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if msg := validateCredentials(req, true); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	params := (&fbauth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password)

	user, err := h.authClient.CreateUser(c.Request.Context(), params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"uid": user.UID, "email": user.Email})
}

// Login exchanges email/password for ID and refresh tokens.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if msg := validateCredentials(req, false); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.identity.SignInWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var signInErr *auth.SignInError
		if errors.As(err, &signInErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":           result.UID,
		"email":         result.Email,
		"id_token":      result.IDToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}

// Logout revokes the authenticated user's refresh tokens, invalidating
// every signed-in session.
func (h *Handler) Logout(c *gin.Context) {
	uid := c.GetString("firebase_uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.authClient.RevokeRefreshTokens(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func validateCredentials(req credentialsRequest, register bool) string {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return "email and password are required"
	}
	if register {
		if len(req.Password) < 6 {
			return "password must be at least 6 characters"
		}
		if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
			return "passwords do not match"
		}
	}
	return ""
}
