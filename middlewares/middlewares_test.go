package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurantapi/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"gotest.tools/assert"
)

func TestAuth(t *testing.T) {
	redisDB, redisMock := redismock.NewClientMock()

	router := gin.New()
	router.GET("/protected", Auth(redisDB), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"payload": c.Request.Header.Get("payload")})
	})

	// missing token (401)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown token (401)
	redisMock.ExpectGet("expired").SetErr(redis.Nil)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 200, session payload is forwarded to the handler
	payload, _ := json.Marshal(models.RedisPayload{User: models.User{Username: "test", Role: "ADMIN"}})
	redisMock.ExpectGet("valid").SetVal(string(payload))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := struct {
		Payload string `json:"payload"`
	}{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, nil, err)
	assert.Equal(t, string(payload), resp.Payload)

	// cookie token works too (200)
	redisMock.ExpectGet("cookie-token").SetVal(string(payload))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "Bearer cookie-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles(t *testing.T) {
	router := gin.New()
	router.GET("/admin", RequireRoles(models.Admin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/staff", RequireRoles(models.Admin, models.Manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	// missing payload (403)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	// wrong role (403)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.Header.Set("payload", "{\"user\":{\"username\":\"test\",\"role\":\"MANAGER\"}}")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	// 200
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.Header.Set("payload", "{\"user\":{\"username\":\"test\",\"role\":\"ADMIN\"}}")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// any of the allowed roles passes (200)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/staff", nil)
	req.Header.Set("payload", "{\"user\":{\"username\":\"test\",\"role\":\"MANAGER\"}}")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
