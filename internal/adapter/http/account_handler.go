package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Radithya02/Catering-Food/internal/adapter/http/middleware"
	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/logging"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

type AccountHandler struct {
	accounts *usecase.Accounts
}

func NewAccountHandler(accounts *usecase.Accounts) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type topUpReq struct {
	Amount string `json:"amount" binding:"required"`
}

// POST /v1/balance/topup
func (h *AccountHandler) TopUp(c *gin.Context) {
	var req topUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	amount, err := entity.NewMoneyFromString(req.Amount)
	if errors.Is(err, entity.ErrInvalidAmount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_amount"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	username := c.GetString(middleware.UsernameKey)
	balance, err := h.accounts.TopUp(c.Request.Context(), username, amount)
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown_account"})
		return
	}
	if err != nil {
		logging.From(c).Error("top up failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	logging.From(c).Info("balance topped up", "username", username, "amount", amount.String())
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// GET /v1/balance
func (h *AccountHandler) Balance(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)
	balance, err := h.accounts.Balance(c.Request.Context(), username)
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown_account"})
		return
	}
	if err != nil {
		logging.From(c).Error("balance lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
