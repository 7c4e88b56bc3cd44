package kafka

import (
	"context"
	"fmt"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// CatalogUpdater applies a new price to the menu store.
type CatalogUpdater interface {
	SetPrice(ctx context.Context, foodID string, price entity.Money) error
}

// PriceChangedHandler applies upstream price feed events to the catalog and
// drops the cached entry so the next read sees the new price.
type PriceChangedHandler struct {
	Catalog CatalogUpdater
	Cache   usecase.CatalogCache // optional
}

func NewPriceChangedHandler(catalog CatalogUpdater, cache usecase.CatalogCache) *PriceChangedHandler {
	return &PriceChangedHandler{Catalog: catalog, Cache: cache}
}

func (h *PriceChangedHandler) Handle(ctx context.Context, ev usecase.PriceChangedMsg) error {
	price, err := entity.NewMoneyFromString(ev.Price)
	if err != nil {
		return fmt.Errorf("price feed %s: %w", ev.FoodID, err)
	}

	if err := h.Catalog.SetPrice(ctx, ev.FoodID, price); err != nil {
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.Invalidate(ctx, ev.FoodID)
	}
	return nil
}
