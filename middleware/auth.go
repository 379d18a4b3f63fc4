package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "servlink/database/repository/user"
	"servlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the Bearer token, verifies its hash against the
// account record (cache-first, DB fallback), and sets userID and role in the
// request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		ctx := context.Background()

		authCache := utils.GetAuthCacheClient()
		cachedHash, cacheErr := authCache.Get(ctx, cacheKey).Result()
		if cacheErr == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		} else {
			if cacheErr != redis.Nil {
				utils.GetLogger().Warn("auth: cache lookup failed, falling back to DB", zap.Error(cacheErr))
			}
			usr, err := users.GetByID(userID)
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			if usr.TokenHash == "" || usr.TokenHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
			c.Set("role", usr.Role)
		}

		// Role may still be missing on a cache hit; resolve it lazily.
		if _, ok := c.Get("role"); !ok {
			usr, err := users.GetByID(userID)
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			c.Set("role", usr.Role)
		}

		c.Set("userID", userID)
		c.Next()
	}
}
