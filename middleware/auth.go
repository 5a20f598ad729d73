package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	hostRepo "slotbook/database/repository/host"
	"slotbook/utils"
)

const authCachePrefix = "auth:host:"

// JWTAuthHostMiddleware authenticates a host session. The token subject
// is looked up once per TTL window through the auth cache; a cache outage
// degrades to a store lookup, never to a hard failure.
func JWTAuthHostMiddleware(hosts hostRepo.HostRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		hostID, err := utils.ExtractHostIDFromToken(tokenString)
		if err != nil || hostID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		ctx := context.Background()
		cacheKey := authCachePrefix + hostID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			if _, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("hostID", hostID)
				c.Next()
				return
			} else if err != redis.Nil {
				authCache = nil
			}
		}

		// Cache miss: confirm the host still exists.
		if _, err := hosts.GetByID(c.Request.Context(), hostID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, "1", time.Hour).Err()
		}

		c.Set("hostID", hostID)
		c.Next()
	}
}
