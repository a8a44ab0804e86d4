// Package middleware provides the bearer-token authentication gate applied
// to every identity-scoped route.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"maddr_backend/internal/api"
	"maddr_backend/internal/feature/account/domain/entity"
)

// ContextAccount is the gin context key holding the authenticated account.
const ContextAccount = "currentAccount"

// AccountResolver resolves a bearer token to the owning account.
// Goの慣例に従い、インターフェースはコンシューマー（middleware）が定義します。
type AccountResolver interface {
	Resolve(ctx context.Context, token string) (*entity.Account, error)
}

// AuthRequired returns a Gin middleware that validates the bearer token and
// stores the resolved account in the request context. Requests without a
// resolvable token are rejected with 401.
func AuthRequired(resolver AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(c)
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		account, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ContextAccount, account)
		c.Next()
	}
}

// CurrentAccount returns the account stored by AuthRequired.
// It must only be called from handlers behind the middleware.
func CurrentAccount(c *gin.Context) *entity.Account {
	return c.MustGet(ContextAccount).(*entity.Account)
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Could not validate credentials"})
}
