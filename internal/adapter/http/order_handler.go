package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Radithya02/Catering-Food/internal/adapter/http/middleware"
	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/logging"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

var (
	ordersSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catering_orders_settled_total",
		Help: "Orders charged against an account balance.",
	})
	ordersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catering_orders_rejected_total",
		Help: "Orders rejected for insufficient balance.",
	})
)

type OrderHandler struct {
	placeOrder *usecase.PlaceOrder
	accounts   *usecase.Accounts
}

func NewOrderHandler(placeOrder *usecase.PlaceOrder, accounts *usecase.Accounts) *OrderHandler {
	return &OrderHandler{placeOrder: placeOrder, accounts: accounts}
}

type orderLineReq struct {
	FoodID   string `json:"foodId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type placeOrderReq struct {
	Lines []orderLineReq `json:"lines" binding:"required,min=1,dive"`
}

// POST /v1/orders
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	in := usecase.PlaceOrderInput{
		Username:       c.GetString(middleware.UsernameKey),
		IdempotencyKey: c.GetHeader("X-Idempotency-Key"),
	}
	for _, line := range req.Lines {
		in.Lines = append(in.Lines, usecase.OrderLineInput{FoodID: line.FoodID, Quantity: line.Quantity})
	}

	out, err := h.placeOrder.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.Replayed {
		c.JSON(http.StatusOK, gin.H{"orderId": out.OrderID, "replayed": true})
		return
	}

	ordersSettled.Inc()
	logging.From(c).Info("order settled",
		"order_id", out.OrderID, "username", in.Username, "total", out.Total.String())
	c.JSON(http.StatusCreated, gin.H{
		"orderId":   out.OrderID,
		"total":     out.Total,
		"createdAt": out.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	var short *usecase.InsufficientBalanceError
	switch {
	case errors.As(err, &short):
		ordersRejected.Inc()
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":   "insufficient_balance",
			"total":   short.Total,
			"balance": short.Balance,
		})
	case errors.Is(err, usecase.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate_request"})
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_not_found"})
	case errors.Is(err, entity.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown_account"})
	default:
		logging.From(c).Error("place order failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
	}
}

// GET /v1/orders
func (h *OrderHandler) History(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)
	orders, err := h.accounts.History(c.Request.Context(), username)
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown_account"})
		return
	}
	if err != nil {
		logging.From(c).Error("order history failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	resp := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		lines := make([]gin.H, 0, len(order.Items()))
		for _, item := range order.Items() {
			lines = append(lines, gin.H{
				"foodId":   item.Food().ID,
				"name":     item.Food().Name,
				"quantity": item.Quantity(),
				"subtotal": item.Subtotal(),
			})
		}
		resp = append(resp, gin.H{
			"orderId":   order.ID(),
			"total":     order.TotalPrice(),
			"createdAt": order.CreatedAt().UTC().Format(time.RFC3339),
			"lines":     lines,
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": resp})
}
