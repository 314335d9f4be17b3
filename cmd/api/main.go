package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lembranca/memorial-backend/internal/config"
	"github.com/lembranca/memorial-backend/internal/handler"
	"github.com/lembranca/memorial-backend/internal/middleware"
	"github.com/lembranca/memorial-backend/internal/migration"
	"github.com/lembranca/memorial-backend/internal/repository"
	"github.com/lembranca/memorial-backend/internal/routes"
	"github.com/lembranca/memorial-backend/internal/service"
	pkgjwt "github.com/lembranca/memorial-backend/pkg/jwt"
	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
	pkgredis "github.com/lembranca/memorial-backend/pkg/redis"
	pkgstorage "github.com/lembranca/memorial-backend/pkg/storage"
)

// @title           Memorial Backend API
// @version         1.0
// @description     Memorial profiles, tribute walls and photo galleries
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", configPath, err)
	}

	// MySQL is required; everything else degrades
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis backs the owner-notification sink; optional
	var notifier service.Notifier = service.NoopNotifier{}
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without notifications)", err)
	} else {
		pkglogger.Info("Connected to Redis")
		notifier = service.NewRedisNotifier(redisClient)
	}

	// S3-compatible storage; uploads fail cleanly when disabled
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		s3Client, err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			pkglogger.Warn("S3 storage init failed: %v (continuing without uploads)", err)
			s3Client = nil
		}
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryDays)*24*time.Hour)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	memorialRepo := repository.NewMemorialRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	memorialService := service.NewMemorialService(memorialRepo, activityRepo, notifier)
	photoService := service.NewPhotoService(photoRepo, memorialRepo, activityRepo)
	messageService := service.NewMessageService(messageRepo, memorialRepo, activityRepo, userRepo, notifier)
	activityService := service.NewActivityService(activityRepo)
	uploadService := service.NewUploadService(s3Client)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	memorialHandler := handler.NewMemorialHandler(memorialService)
	photoHandler := handler.NewPhotoHandler(photoService)
	messageHandler := handler.NewMessageHandler(messageService)
	activityHandler := handler.NewActivityHandler(activityService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	if env != "development" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router,
		authHandler,
		memorialHandler,
		photoHandler,
		messageHandler,
		activityHandler,
		uploadHandler,
		jwtManager,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting, drain, then close the DB handle
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	pkglogger.Info("Bye")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
