package queue

import (
	"context"
	"log/slog"

	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// KitchenTicketHandler turns settled orders into fulfilment tickets. The
// kitchen has no system of record of its own, so a structured log line per
// ticket is the handoff.
type KitchenTicketHandler struct {
	l *slog.Logger
}

func NewKitchenTicketHandler(l *slog.Logger) *KitchenTicketHandler {
	return &KitchenTicketHandler{l: l}
}

// HandleSettled is intended to be used with queue.JSONHandler[usecase.SettledMsg].
func (h *KitchenTicketHandler) HandleSettled(ctx context.Context, msg usecase.SettledMsg) error {
	for _, line := range msg.Lines {
		h.l.InfoContext(ctx, "kitchen ticket",
			"order_id", msg.OrderID,
			"username", msg.Username,
			"food_id", line.FoodID,
			"name", line.Name,
			"quantity", line.Quantity,
			"subtotal", line.Subtotal,
		)
	}
	h.l.InfoContext(ctx, "kitchen ticket complete",
		"order_id", msg.OrderID, "total", msg.Total, "created_at", msg.CreatedAt)
	return nil
}
