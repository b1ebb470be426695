package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"restaurantapi/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func Auth(redis *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("token")
		if token == "" {
			token = c.Request.Header.Get("Authorization")
		}

		redisPayload, err := ValidateToken(token, redis)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			c.Abort()
			return
		}
		c.Request.Header.Set("payload", redisPayload)
		c.Next()
	}
}

func ValidateToken(authorizationHeader string, redis *redis.Client) (string, error) {
	if !strings.Contains(authorizationHeader, "Bearer") {
		return "", errors.New("invalid-token")
	}
	tokenString := strings.Replace(authorizationHeader, "Bearer ", "", -1)

	redisPayload, err := redis.Get(context.Background(), tokenString).Result()
	if err != nil {
		return "", err
	}

	if redisPayload == "" {
		return "", errors.New("empty-payload")
	}

	return redisPayload, nil
}

// RequireRoles gates admin-panel mutations on the role carried by the session
// payload. Auth must run first.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.RedisPayload

		if err := json.Unmarshal([]byte(c.Request.Header.Get("payload")), &payload); err != nil {
			log.Println(err)
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if payload.Role == string(role) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		c.Abort()
	}
}
