package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	userRepo "foodbridge/database/repository/user"
	"foodbridge/models"
	"foodbridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// CurrentUserKey is the gin context key holding the authenticated account.
const CurrentUserKey = "currentUser"

// authCacheTTL bounds how long a resolved account is served from Redis
// without a fresh Mongo lookup.
const authCacheTTL = time.Hour

// JWTAuthMiddleware validates the Bearer token, resolves the account it
// belongs to and stores it in the request context. Resolved accounts are
// cached in Redis keyed by token hash; a nil cache client degrades to a
// Mongo lookup per request.
func JWTAuthMiddleware(users userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if authCache != nil {
			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				var usr models.User
				if json.Unmarshal([]byte(cached), &usr) == nil {
					_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
					c.Set(CurrentUserKey, &usr)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				utils.GetLogger().Sugar().Warnf("auth cache lookup failed: %v", err)
			}
		}

		usr, err := users.GetByEmail(email)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		if authCache != nil {
			if payload, err := json.Marshal(usr); err == nil {
				_ = authCache.Set(ctx, cacheKey, payload, authCacheTTL).Err()
			}
		}

		c.Set(CurrentUserKey, usr)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated account from the gin context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	usr, ok := val.(*models.User)
	return usr, ok
}
