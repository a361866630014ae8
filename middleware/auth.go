package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "mindcare/database/repository/user"
	"mindcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const authCacheTTL = time.Hour

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// JWTAuthMiddleware authenticates requests via a Bearer token. The token's
// SHA-256 hash is checked against the hash stored on the user record, so a
// logout (which clears the stored hash) invalidates every outstanding token.
// authCache is optional; when nil every request hits the database.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + identity.UserID

		if authCache != nil {
			ctx := context.Background()
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalidated"})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
				setIdentity(c, identity)
				c.Next()
				return
			}
			// Cache miss or Redis trouble; fall through to the database.
		}

		user, err := users.GetByID(identity.UserID)
		if err != nil {
			utils.GetLogger().Error("auth: user lookup failed", zap.String("userId", identity.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user == nil || user.TokenHash == "" || user.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalidated"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(context.Background(), cacheKey, computedHash, authCacheTTL).Err()
		}
		setIdentity(c, identity)
		c.Next()
	}
}

func setIdentity(c *gin.Context, identity *utils.TokenIdentity) {
	c.Set(CtxUserID, identity.UserID)
	c.Set(CtxUserEmail, identity.Email)
	c.Set(CtxUserRole, identity.Role)
}
