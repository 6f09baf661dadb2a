package handlers

import (
	"net/http"
	"time"

	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	Sessions  *services.SessionService
	JWTSecret []byte
}

func NewAuthHandler(sessions *services.SessionService, secret []byte) *AuthHandler {
	return &AuthHandler{Sessions: sessions, JWTSecret: secret}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Sessions.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := h.signToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_error", "failed to create token")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := h.signToken(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_error", "failed to create token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.Sessions.CurrentUser()
	if !ok {
		respondError(c, http.StatusUnauthorized, "no_active_session", "no active session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(h.JWTSecret)
}
