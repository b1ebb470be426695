package routers

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"restaurantapi/controllers"
	"restaurantapi/middlewares"
	"restaurantapi/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
)

func Route() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())
	api := controllers.NewAPI()

	api.Db = newDB(nil)
	api.Db.SetConnMaxLifetime(5 * time.Minute)
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	api.Redis = redis.NewClient(&redis.Options{
		Addr: redisHost + ":" + redisPort,
		DB:   0,
	})

	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		api.UploadDir = dir
	}

	router.Static("/uploads", api.UploadDir)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	staff := []models.Role{models.Admin, models.Manager}

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", api.Register)
		auth.POST("/login", api.Authenticate)
		auth.GET("/profile", middlewares.Auth(api.Redis), api.Profile)
	}

	router.GET("/api/check-session", middlewares.Auth(api.Redis), api.CheckSession)
	router.GET("/api/refresh-session", middlewares.Auth(api.Redis), api.RefreshSession)
	router.GET("/api/logout", middlewares.Auth(api.Redis), api.Logout)
	router.POST("/api/forgot-password", api.ForgotPassword)
	router.GET("/api/verify-token/:token", api.VerifyTokenReset)
	router.POST("/api/reset-password/:token", api.UpdateUserReset)

	categories := router.Group("/api/categories")
	{
		categories.GET("", api.GetCategories)
		categories.GET("/:id", api.GetCategory)
		categories.POST("", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.CreateCategory)
		categories.PUT("/:id", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.UpdateCategory)
		categories.PUT("/:id/image", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.UpdateCategoryImage)
		categories.DELETE("/:id", middlewares.Auth(api.Redis), middlewares.RequireRoles(models.Admin), api.DeleteCategory)
	}

	products := router.Group("/api/products")
	{
		products.GET("", api.GetProducts)
		products.GET("/category/:categoryId", api.GetProductsByCategory)
		products.GET("/:id", api.GetProduct)
		products.GET("/export", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.ExportProducts)
		products.POST("", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.CreateProduct)
		products.PUT("/:id", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.UpdateProduct)
		products.PUT("/:id/images", middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...), api.UpdateProductImages)
		products.DELETE("/:id", middlewares.Auth(api.Redis), middlewares.RequireRoles(models.Admin), api.DeleteProduct)
	}

	restaurant := router.Group("/api/restaurant")
	{
		restaurant.GET("", api.GetRestaurantInfo)
		restaurant.PUT("", middlewares.Auth(api.Redis), middlewares.RequireRoles(models.Admin), api.UpdateRestaurantInfo)
		restaurant.PUT("/logo", middlewares.Auth(api.Redis), middlewares.RequireRoles(models.Admin), api.UpdateRestaurantLogo)
		restaurant.PUT("/banner", middlewares.Auth(api.Redis), middlewares.RequireRoles(models.Admin), api.UpdateRestaurantBanner)
	}

	upload := router.Group("/api/upload")
	upload.Use(middlewares.Auth(api.Redis), middlewares.RequireRoles(staff...))
	{
		upload.POST("/single", api.UploadSingleImage)
		upload.POST("/multiple", api.UploadMultipleImages)
		upload.DELETE("/:filename", api.DeleteImage)
	}

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func newDB(indb *sql.DB) *sql.DB {
	if indb != nil {
		return indb
	}
	connString := os.Getenv("DB_CONNECTION_STRING")
	if connString == "" {
		log.Fatal("Please provide DB_CONNECTION_STRING environment variable")
	}

	var err error
	conn, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatalf("Cannot connect to db with connection %s: %v", connString, err)
	}

	err = conn.Ping()
	if err != nil {
		log.Fatal(err)
	}

	return conn
}
