package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Radithya02/Catering-Food/internal/adapter/http/middleware"
	"github.com/Radithya02/Catering-Food/internal/logging"
)

func NewRouter(ah *AuthHandler, ch *CatalogHandler, oh *OrderHandler, bh *AccountHandler, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", ah.Register)
		v1.POST("/auth/login", ah.Login)
		v1.GET("/menu", ch.List)
		v1.GET("/menu/:id", ch.Find)

		authed := v1.Group("", authz.Require())
		{
			authed.POST("/orders", oh.Place)
			authed.GET("/orders", oh.History)
			authed.POST("/balance/topup", bh.TopUp)
			authed.GET("/balance", bh.Balance)
		}
	}

	return r
}
