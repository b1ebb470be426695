package controllers

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"os"
	"strings"
	"time"

	"restaurantapi/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Authenticate signs an admin user in by username or email.
func (api *API) Authenticate(c *gin.Context) {
	var authRequest models.AuthRequest
	if err := c.ShouldBindJSON(&authRequest); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if authRequest.Username == "" || authRequest.Password == "" {
		sendError(c, http.StatusBadRequest, "missing-username-or-password")
		return
	}

	var authResponse models.AuthResponse

	var correct bool
	err := api.Db.QueryRow(`
		SELECT id, username, email, role, created_at, updated_at, password = crypt($2, password)
		FROM users
		WHERE (username = $1 OR email = $1) AND is_active
	`, authRequest.Username, authRequest.Password).Scan(&authResponse.User.Id, &authResponse.User.Username,
		&authResponse.User.Email, &authResponse.User.Role,
		&authResponse.User.CreatedAt, &authResponse.User.UpdatedAt, &correct)

	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusUnauthorized, "invalid-username-or-password")
			return
		}

		sendServerError(c, err)
		return
	}

	if !correct {
		sendError(c, http.StatusUnauthorized, "invalid-username-or-password")
		return
	}

	var lastLogin time.Time
	if err := api.Db.QueryRow(`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1 RETURNING last_login`,
		authResponse.User.Id).Scan(&lastLogin); err != nil {
		sendServerError(c, err)
		return
	}
	authResponse.User.LastLogin = &lastLogin

	sessPayload, _ := api.Redis.Get(context.Background(), "auth:"+authResponse.User.Username).Result()
	if sessPayload != "" {
		log.Println("removing old session..")
		api.Redis.Del(context.Background(), sessPayload)
	}

	authResponse.Token, err = api.GenerateToken(authResponse)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

// Register creates an admin-panel user. Open registration is only meant for
// bootstrapping; the route sits behind the admin gate in production setups.
func (api *API) Register(c *gin.Context) {
	var payload models.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateRegister(payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	role := string(models.Manager)
	if payload.Role == string(models.Admin) {
		role = string(models.Admin)
	}

	var exists bool
	if err := api.Db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)",
		payload.Username, payload.Email).Scan(&exists); err != nil {
		sendServerError(c, err)
		return
	}

	if exists {
		sendError(c, http.StatusConflict, "user-already-exists")
		return
	}

	var authResponse models.AuthResponse
	if err := api.Db.QueryRow(`
		INSERT INTO users (id, username, email, password, role, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, crypt($3, gen_salt('bf', 8)), $4, true, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, username, email, role, created_at, updated_at
	`, payload.Username, payload.Email, payload.Password, role).Scan(&authResponse.User.Id,
		&authResponse.User.Username, &authResponse.User.Email, &authResponse.User.Role,
		&authResponse.User.CreatedAt, &authResponse.User.UpdatedAt); err != nil {
		sendServerError(c, err)
		return
	}

	token, err := api.GenerateToken(authResponse)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	authResponse.Token = token

	c.JSON(http.StatusCreated, authResponse)
}

func (api *API) Profile(c *gin.Context) {
	u := ParsePayload(c)

	c.JSON(http.StatusOK, gin.H{"user": u.User})
}

func (api *API) CheckSession(c *gin.Context) {
	u := ParsePayload(c)

	err := api.Redis.Get(context.Background(), "auth:"+u.Username).Err()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (api *API) RefreshSession(c *gin.Context) {
	u := ParsePayload(c)

	refreshPayload, err := api.Redis.Get(context.Background(), u.RefreshToken).Result()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var authResponse models.AuthResponse

	if err := json.Unmarshal([]byte(refreshPayload), &authResponse); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	err = api.Redis.Get(context.Background(), "auth:"+u.Username).Err()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	authResponse.Token, err = api.GenerateToken(authResponse)
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (api *API) Logout(c *gin.Context) {
	u := ParsePayload(c)
	token, _ := c.Cookie("token")
	tokenString := strings.Replace(token, "Bearer ", "", -1)

	err := api.Redis.Del(context.Background(), tokenString).Err()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	err = api.Redis.Del(context.Background(), u.RefreshToken).Err()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	err = api.Redis.Del(context.Background(), "auth:"+u.Username).Err()
	if err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (api *API) ForgotPassword(c *gin.Context) {
	var payload struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := mail.ParseAddress(payload.Email); err != nil {
		sendError(c, http.StatusBadRequest, "invalid-email")
		return
	}

	var userId string
	err := api.Db.QueryRow("SELECT id FROM users WHERE email = $1 AND is_active", payload.Email).Scan(&userId)
	if err != nil {
		if err == sql.ErrNoRows {
			sendError(c, http.StatusNotFound, "user-not-found")
			return
		}
		sendServerError(c, err)
		return
	}

	token := tokenGenerator()

	if err := api.Redis.Set(context.Background(), "reset:"+token, userId, 15*time.Minute).Err(); err != nil {
		log.Println(err)
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := sendEmailReset(payload.Email, token); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (api *API) VerifyTokenReset(c *gin.Context) {
	token := c.Param("token")

	err := api.Redis.Get(context.Background(), "reset:"+token).Err()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusNotFound, "token-not-found")
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (api *API) UpdateUserReset(c *gin.Context) {
	token := c.Param("token")

	var payload models.PasswordReset
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if len(payload.Password) < 8 {
		sendError(c, http.StatusBadRequest, "password-must-be-at-least-8-characters")
		return
	}

	if payload.Password != payload.PasswordConfirmation {
		sendError(c, http.StatusBadRequest, "password-confirmation-mismatch")
		return
	}

	userId, err := api.Redis.Get(context.Background(), "reset:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			sendError(c, http.StatusNotFound, "token-not-found")
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := api.UpdatePassword(userId, payload.Password); err != nil {
		if err.Error() == "user-not-found" {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	api.Redis.Del(context.Background(), "reset:"+token)

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (api *API) GenerateToken(resp models.AuthResponse) (string, error) {

	key, err := base64.StdEncoding.DecodeString(os.Getenv("SESSION_KEY"))
	if err != nil {
		log.Println(err)
		return "", err
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user-id"] = resp.Id
	claims["expires"] = 1800
	refreshToken, err := token.SignedString(key)
	if err != nil {
		log.Println(err)
		return "", err
	}
	claims["refresh-token"] = refreshToken
	claims["user"] = resp.User

	redisPayload, _ := json.Marshal(claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		log.Println(err)
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := map[string]string{
		tokenString:                  string(redisPayload),
		refreshToken:                 string(redisPayload),
		"auth:" + resp.User.Username: tokenString,
	}

	for k, v := range data {
		err = api.Redis.Set(ctx, k, v, 30*time.Minute).Err()
		if err != nil {
			log.Println(err)
			return "", err
		}

	}

	auth := fmt.Sprintf("Bearer %s", tokenString)

	return auth, nil
}

func validateRegister(payload models.RegisterRequest) error {
	if payload.Username == "" {
		return fmt.Errorf("missing-username")
	}

	if payload.Email == "" {
		return fmt.Errorf("missing-email")
	}

	if _, err := mail.ParseAddress(payload.Email); err != nil {
		log.Println(err)
		return fmt.Errorf("invalid-email")
	}

	if payload.Password == "" {
		return fmt.Errorf("missing-password")
	}

	if len(payload.Password) < 8 {
		return fmt.Errorf("password-must-be-at-least-8-characters")
	}

	return nil
}
