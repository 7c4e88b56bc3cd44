package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Radithya02/Catering-Food/configs"
	"github.com/Radithya02/Catering-Food/internal/logging"
	"github.com/Radithya02/Catering-Food/internal/security"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

type AuthHandler struct {
	accounts *usecase.Accounts
	cfg      configs.Config
}

func NewAuthHandler(accounts *usecase.Accounts, cfg configs.Config) *AuthHandler {
	return &AuthHandler{accounts: accounts, cfg: cfg}
}

type credentialsReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	err := h.accounts.Register(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, usecase.ErrDuplicateUsername) {
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate_username"})
		return
	}
	if err != nil {
		logging.From(c).Error("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	logging.From(c).Info("account registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"username": req.Username})
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, usecase.ErrAuthenticationFailed) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication_failed"})
		return
	}
	if err != nil {
		logging.From(c).Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	signed, expires, err := security.IssueToken(h.cfg, user.Username())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int(time.Until(expires).Seconds()),
	})
}
