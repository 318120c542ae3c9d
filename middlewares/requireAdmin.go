package middlewares

import (
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return requireRole("Insufficient role for this resource", roles...)
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole("Admin access required", models.RoleAdmin)
}

func requireRole(deniedMessage string, roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, exists := CurrentIdentity(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !identity.HasRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": deniedMessage})
			return
		}

		ctx.Next()
	}
}

// RequireSelfOrAdmin guards routes whose path parameter names the owning user id.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, exists := CurrentIdentity(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		ownerID, err := strconv.ParseUint(ctx.Param(param), 10, 0)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid " + param})
			return
		}

		if !auth.CanAccess(identity, uint(ownerID)) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You are not allowed to access this resource"})
			return
		}

		ctx.Next()
	}
}
