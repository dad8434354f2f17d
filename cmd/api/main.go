package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vantagevc/dealflow-backend/internal/config"
	"github.com/vantagevc/dealflow-backend/internal/handler"
	"github.com/vantagevc/dealflow-backend/internal/middleware"
	"github.com/vantagevc/dealflow-backend/internal/migration"
	"github.com/vantagevc/dealflow-backend/internal/repository"
	"github.com/vantagevc/dealflow-backend/internal/routes"
	"github.com/vantagevc/dealflow-backend/internal/service"
	"github.com/vantagevc/dealflow-backend/pkg/jwt"
	pkglogger "github.com/vantagevc/dealflow-backend/pkg/logger"
	pkgredis "github.com/vantagevc/dealflow-backend/pkg/redis"
)

// @title           Deal Flow Pipeline API
// @version         1.0
// @description     Venture deal pipeline with versioned investment memos and derived activity logging
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis (optional, rate limiting only)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
		}
	}

	// JWT Manager
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn,
		cfg.JWT.RefreshIn,
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Middleware
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "dealflow-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Wiring: repositories -> services -> handlers
	userRepo := repository.NewUserRepository(db)
	dealRepo := repository.NewDealRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	memoRepo := repository.NewMemoRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	dealService := service.NewDealService(dealRepo, activityRepo)
	memoService := service.NewMemoService(memoRepo, dealRepo)

	authHandler := handler.NewAuthHandler(authService)
	dealHandler := handler.NewDealHandler(dealService)
	memoHandler := handler.NewMemoHandler(memoService)

	routes.Setup(router, authHandler, dealHandler, memoHandler, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mc := mysqldriver.Config{
		User:                 cfg.Database.User,
		Passwd:               cfg.Database.Password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port),
		DBName:               cfg.Database.Name,
		ParseTime:            true,
		Loc:                  time.UTC,
		AllowNativePasswords: true,
		Params:               map[string]string{"charset": "utf8mb4"},
	}

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	return gorm.Open(mysql.Open(mc.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
