package queue_test

import (
	"context"
	"log/slog"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radithya02/Catering-Food/internal/adapter/queue"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

func TestJSONHandler(t *testing.T) {
	t.Run("decodes the body and calls the typed handler", func(t *testing.T) {
		var got usecase.SettledMsg
		h := queue.JSONHandler[usecase.SettledMsg]{
			HandleFunc: func(_ context.Context, msg usecase.SettledMsg) error {
				got = msg
				return nil
			},
		}

		body := []byte(`{"orderId":"o-1","username":"budi","total":"35000","lines":[{"foodId":"nasi-goreng","name":"Nasi Goreng","quantity":2,"subtotal":"30000"}]}`)
		err := h.Handle(context.Background(), amqp.Delivery{Body: body})
		require.NoError(t, err)

		assert.Equal(t, "o-1", got.OrderID)
		assert.Equal(t, "budi", got.Username)
		assert.Equal(t, "35000", got.Total)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].Quantity)
	})

	t.Run("returns an error on malformed JSON", func(t *testing.T) {
		h := queue.JSONHandler[usecase.SettledMsg]{
			HandleFunc: func(context.Context, usecase.SettledMsg) error {
				t.Fatal("handler must not run on decode failure")
				return nil
			},
		}

		err := h.Handle(context.Background(), amqp.Delivery{Body: []byte("{not json")})
		require.Error(t, err)
	})
}

func TestKitchenTicketHandler(t *testing.T) {
	h := queue.NewKitchenTicketHandler(slog.Default())

	msg := usecase.SettledMsg{
		OrderID:  "o-2",
		Username: "sari",
		Total:    "20000",
		Lines: []usecase.SettledLine{
			{FoodID: "ayam-bakar", Name: "Ayam Bakar", Quantity: 1, Subtotal: "20000"},
		},
	}
	require.NoError(t, h.HandleSettled(context.Background(), msg))
}
