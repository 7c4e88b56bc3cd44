package usecase

import (
	"context"

	"github.com/Radithya02/Catering-Food/internal/entity"
)

// Catalog is the read-only menu surface with a read-through cache.
type Catalog struct {
	menu  FoodRepo
	cache CatalogCache // optional
}

func NewCatalog(menu FoodRepo, cache CatalogCache) *Catalog {
	return &Catalog{menu: menu, cache: cache}
}

func (c *Catalog) List(ctx context.Context) ([]entity.Food, error) {
	return c.menu.FindAll(ctx)
}

func (c *Catalog) Find(ctx context.Context, id string) (entity.Food, error) {
	if c.cache != nil {
		if food, ok, err := c.cache.GetFood(ctx, id); err == nil && ok {
			return food, nil
		}
	}
	food, err := c.menu.FindByID(ctx, id)
	if err != nil {
		return entity.Food{}, err
	}
	if c.cache != nil {
		_ = c.cache.SetFood(ctx, food)
	}
	return food, nil
}
