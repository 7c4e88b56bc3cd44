package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// HandlerFunc processes a decoded event.
type HandlerFunc func(ctx context.Context, ev usecase.PriceChangedMsg) error

// Consumer consumes a topic with a single handler.
type Consumer struct {
	Group  sarama.ConsumerGroup
	Topics []string
	Handle HandlerFunc
	Logger *slog.Logger // optional
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, h HandlerFunc) *Consumer {
	return &Consumer{
		Group:  group,
		Topics: topics,
		Handle: h,
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	handler := &cgHandler{handle: c.Handle, logger: c.Logger}
	for {
		if err := c.Group.Consume(ctx, c.Topics, handler); err != nil {
			return err
		}
		// When Consume returns, it's because ctx was cancelled or a rebalance happened.
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

type cgHandler struct {
	handle HandlerFunc
	logger *slog.Logger
}

func (h *cgHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *cgHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *cgHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var ev usecase.PriceChangedMsg
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			if h.logger != nil {
				h.logger.Error("kafka decode error", "error", err)
			}
			// mark to avoid reprocessing poison
			sess.MarkMessage(msg, "decode-error")
			continue
		}
		if err := h.handle(sess.Context(), ev); err != nil {
			if h.logger != nil {
				h.logger.Error("handler error",
					"error", err, "key", string(msg.Key), "offset", msg.Offset)
			}
			// Do not mark message; let it retry on next poll.
			continue
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
