package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/picardie-nature/GeoNature-citizen/config"
	"github.com/picardie-nature/GeoNature-citizen/controllers"
	"github.com/picardie-nature/GeoNature-citizen/db"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/kv"
	"github.com/picardie-nature/GeoNature-citizen/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

// TokenAuthMiddleware validates the access token in the Authorization
// header before the protected handler runs
func TokenAuthMiddleware(auth *controllers.AuthController) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.TokenValid(c)
		c.Next()
	}
}

func main() {
	//Load the .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Error("failed to load the env file")
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	//Start the default gin server
	r := gin.Default()

	//Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(CORSMiddleware())
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	redisKV, err := kv.NewRedis(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to key-value store", "error", err)
		os.Exit(1)
	}

	mongoDB, err := db.NewMongo(context.Background(), cfg.Mongo.URI, cfg.Mongo.Name)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(redisKV, cfg.JWT)
	userService := service.NewUserService(mongoDB, authService)
	sightService := service.NewSightService(mongoDB)

	health := controllers.NewHealthController()
	r.GET("/health", health.Health)

	auth := controllers.NewAuthController(authService)
	r.POST("/logout", auth.Logout)
	r.POST("/token_refresh", auth.Refresh)

	user := controllers.NewUserController(userService)
	r.POST("/registration", user.Register)
	r.POST("/login", user.Login)

	sight := controllers.NewSightController(sightService)
	r.GET("/sights", sight.List)

	protected := r.Group("/", TokenAuthMiddleware(auth))
	protected.GET("/allusers", user.AllUsers)
	protected.GET("/logged_user", user.LoggedUser)
	protected.POST("/sight", sight.Create)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "ssl", cfg.SSL)

	if cfg.SSL {
		err = r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile)
	} else {
		err = r.Run(":" + cfg.Port)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
