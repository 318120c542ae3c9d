package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
)

const ContextIdentityKey = "identity"

// Authenticator resolves a bearer token into a caller identity.
type Authenticator interface {
	Authenticate(token string) (auth.Identity, error)
}

// RequireAuth verifies the bearer token once and stores the caller identity in the context.
func RequireAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		identity, err := authenticator.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			message := utils.ErrUnauthenticated.Error()
			if errors.Is(err, utils.ErrIdentityNotFound) {
				message = utils.ErrIdentityNotFound.Error()
			}
			log.Printf("Authentication failed for %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
			return
		}

		ctx.Set(ContextIdentityKey, identity)
		ctx.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireAuth.
func CurrentIdentity(ctx *gin.Context) (auth.Identity, bool) {
	value, exists := ctx.Get(ContextIdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
