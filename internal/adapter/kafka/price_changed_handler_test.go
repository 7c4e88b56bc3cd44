package kafka_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radithya02/Catering-Food/internal/adapter/kafka"
	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

type mockCatalog struct {
	prices map[string]entity.Money
	err    error
}

func (m *mockCatalog) SetPrice(_ context.Context, foodID string, price entity.Money) error {
	if m.err != nil {
		return m.err
	}
	m.prices[foodID] = price
	return nil
}

type mockCache struct {
	invalidated []string
}

var _ usecase.CatalogCache = (*mockCache)(nil)

func (m *mockCache) GetFood(context.Context, string) (entity.Food, bool, error) {
	return entity.Food{}, false, nil
}
func (m *mockCache) SetFood(context.Context, entity.Food) error { return nil }
func (m *mockCache) Invalidate(_ context.Context, id string) error {
	m.invalidated = append(m.invalidated, id)
	return nil
}

func TestPriceChangedHandler(t *testing.T) {
	t.Run("applies new price and invalidates cache", func(t *testing.T) {
		catalog := &mockCatalog{prices: map[string]entity.Money{}}
		cache := &mockCache{}
		h := kafka.NewPriceChangedHandler(catalog, cache)

		err := h.Handle(context.Background(), usecase.PriceChangedMsg{FoodID: "nasi-goreng", Price: "17500"})
		require.NoError(t, err)

		want := entity.MustMoney("17500")
		assert.True(t, catalog.prices["nasi-goreng"].Equal(want))
		assert.Equal(t, []string{"nasi-goreng"}, cache.invalidated)
	})

	t.Run("rejects malformed price", func(t *testing.T) {
		catalog := &mockCatalog{prices: map[string]entity.Money{}}
		h := kafka.NewPriceChangedHandler(catalog, nil)

		err := h.Handle(context.Background(), usecase.PriceChangedMsg{FoodID: "nasi-goreng", Price: "not-a-number"})
		require.Error(t, err)
		assert.Empty(t, catalog.prices)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		catalog := &mockCatalog{prices: map[string]entity.Money{}}
		h := kafka.NewPriceChangedHandler(catalog, nil)

		err := h.Handle(context.Background(), usecase.PriceChangedMsg{FoodID: "es-teh", Price: "-5000"})
		require.ErrorIs(t, err, entity.ErrInvalidAmount)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		catalog := &mockCatalog{prices: map[string]entity.Money{}, err: usecase.ErrItemNotFound}
		h := kafka.NewPriceChangedHandler(catalog, nil)

		err := h.Handle(context.Background(), usecase.PriceChangedMsg{FoodID: "missing", Price: "1000"})
		require.ErrorIs(t, err, usecase.ErrItemNotFound)
	})

	t.Run("works without a cache", func(t *testing.T) {
		catalog := &mockCatalog{prices: map[string]entity.Money{}}
		h := kafka.NewPriceChangedHandler(catalog, nil)

		err := h.Handle(context.Background(), usecase.PriceChangedMsg{FoodID: "ayam-bakar", Price: "21000"})
		require.NoError(t, err)
	})
}
