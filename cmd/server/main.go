package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"personalysis/internal/cache"
	"personalysis/internal/config"
	"personalysis/internal/logger"
	"personalysis/internal/repository"
	"personalysis/internal/service"
	"personalysis/internal/transport/rest"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.WithError(err).Fatal("failed to ping MongoDB")
	}
	log.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.WithError(err).Fatal("failed to ping Redis")
	}
	log.Info("connected to Redis")

	// Initialize repositories
	companyRepo := repository.NewCompanyRepo(db)
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	demoRepo := repository.NewDemoRequestRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	newsletterRepo := repository.NewNewsletterRepo(db)

	// Initialize caches
	notificationCache := cache.NewNotificationCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(companyRepo, cfg.JWTSecret)
	surveySvc := service.NewSurveyService(surveyRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, notificationCache, log)
	responseSvc := service.NewResponseService(responseRepo, surveyRepo, notificationSvc)
	statsSvc := service.NewStatsService(responseRepo, surveyRepo, log)
	exportSvc := service.NewExportService(responseRepo, surveyRepo)
	demoSvc := service.NewDemoService(demoRepo)
	newsletterSvc := service.NewNewsletterService(newsletterRepo)

	insightClient := service.NewInsightClient(cfg.InsightAPIURL, cfg.InsightAPIKey)
	if insightClient.Enabled() {
		log.Info("insight service configured")
	} else {
		log.Warn("INSIGHT_API_URL not set, insight generation disabled")
	}

	// Create router with container
	container := &rest.Container{
		AuthService:         authSvc,
		SurveyService:       surveySvc,
		ResponseService:     responseSvc,
		StatsService:        statsSvc,
		ExportService:       exportSvc,
		DemoService:         demoSvc,
		NotificationService: notificationSvc,
		NewsletterService:   newsletterSvc,
		InsightGenerator:    insightClient,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
