package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tuitionhub/internal/auth"
	"tuitionhub/internal/cache"
	"tuitionhub/internal/config"
	"tuitionhub/internal/data"
	"tuitionhub/internal/handler"
	"tuitionhub/internal/middleware"
	"tuitionhub/internal/service"
	"tuitionhub/internal/storage"
	"tuitionhub/pkg/db"
	"tuitionhub/pkg/kafka"
	"tuitionhub/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	pool, err := db.New(ctx, db.Config{
		URL:            cfg.PostgresURL,
		MaxConns:       cfg.PostgresMaxConn,
		MinConns:       cfg.PostgresMinConn,
		AutoMigrate:    cfg.PostgresAutoMigrate,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	redisConn := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	redisCache := cache.NewRedisCache(redisConn)

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: strings.Split(cfg.KafkaBrokers, ","),
	})
	if err != nil {
		logger.Fatal(ctx, "cannot create kafka producer", zap.Error(err))
	}
	defer func() { _ = producer.Close() }()

	s3Client, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create s3 client", zap.Error(err))
	}
	avatarStore, err := storage.NewS3AvatarStore(ctx, s3Client, cfg.S3Bucket, cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal(ctx, "cannot create avatar store", zap.Error(err))
	}

	userRepository := data.NewUserRepository(pool)
	profileRepository := data.NewProfileRepository(pool)
	postRepository := data.NewPostRepository(pool)
	responseRepository := data.NewResponseRepository(pool)
	conversationRepository := data.NewConversationRepository(pool)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret)

	authService := service.NewAuthService(userRepository, auth.BcryptHasher{}, tokenManager)
	profileService := service.NewProfileService(profileRepository, userRepository)
	postService := service.NewPostService(postRepository)
	responseService := service.NewResponseService(responseRepository, postRepository, producer)
	messagingService := service.NewMessagingService(conversationRepository, postRepository, producer)
	avatarService := service.NewAvatarService(userRepository, avatarStore)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, redisCache)
	postHandler := handler.NewPostHandler(postService)
	responseHandler := handler.NewResponseHandler(responseService)
	messageHandler := handler.NewMessageHandler(messagingService)
	avatarHandler := handler.NewAvatarHandler(avatarService, redisCache)

	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 10<<20) // 10 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
	})

	r.Route("/student", func(r chi.Router) {
		profileHandler.RegisterStudentRoutes(r, authMiddleware)
	})

	r.Route("/teacher", func(r chi.Router) {
		profileHandler.RegisterTeacherRoutes(r, authMiddleware)
	})

	r.Route("/posts", func(r chi.Router) {
		postHandler.RegisterRoutes(r, authMiddleware)
		responseHandler.RegisterRoutes(r, authMiddleware)
	})

	r.Route("/messages", func(r chi.Router) {
		messageHandler.RegisterRoutes(r, authMiddleware)
	})

	r.Route("/profile-picture", func(r chi.Router) {
		avatarHandler.RegisterRoutes(r, authMiddleware)
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
