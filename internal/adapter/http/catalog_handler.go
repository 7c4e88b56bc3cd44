package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Radithya02/Catering-Food/internal/logging"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

type CatalogHandler struct {
	catalog *usecase.Catalog
}

func NewCatalogHandler(catalog *usecase.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /v1/menu
func (h *CatalogHandler) List(c *gin.Context) {
	foods, err := h.catalog.List(c.Request.Context())
	if err != nil {
		logging.From(c).Error("menu list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": foods})
}

// GET /v1/menu/:id
func (h *CatalogHandler) Find(c *gin.Context) {
	food, err := h.catalog.Find(c.Request.Context(), c.Param("id"))
	if errors.Is(err, usecase.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
		return
	}
	if err != nil {
		logging.From(c).Error("menu lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, food)
}
