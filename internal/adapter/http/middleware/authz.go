package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Radithya02/Catering-Food/configs"
	"github.com/Radithya02/Catering-Food/internal/security"
)

// UsernameKey is where Require stores the authenticated account name.
const UsernameKey = "username"

type Authz struct {
	cfg configs.Config
}

func NewAuthz(cfg configs.Config) *Authz {
	return &Authz{cfg: cfg}
}

// Require validates the bearer token and binds the account username to the
// request context for handlers downstream.
func (a *Authz) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		username, err := security.ParseToken(a.cfg, raw)
		if err != nil {
			unauth(c, "invalid_token", "invalid jwt")
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}
