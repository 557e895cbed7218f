package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"personalysis/internal/service"
	"personalysis/internal/transport/rest/handler"
	"personalysis/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	SurveyService       *service.SurveyService
	ResponseService     *service.ResponseService
	StatsService        *service.StatsService
	ExportService       *service.ExportService
	DemoService         *service.DemoService
	NotificationService *service.NotificationService
	NewsletterService   *service.NewsletterService
	InsightGenerator    service.InsightGenerator
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	statsHandler := handler.NewStatsHandler(c.StatsService, c.ResponseService, c.InsightGenerator)
	exportHandler := handler.NewExportHandler(c.ExportService, c.SurveyService)
	crmHandler := handler.NewCRMHandler(c.DemoService, c.NotificationService, c.NewsletterService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/surveys/{surveyId}/responses", statsHandler.SubmitResponse).Methods("POST", "OPTIONS")
	v1.HandleFunc("/demo-requests", crmHandler.SubmitDemoRequest).Methods("POST", "OPTIONS")
	v1.HandleFunc("/newsletter/subscribe", crmHandler.SubscribeNewsletter).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Company routes (require company auth)
	companyRoutes := v1.NewRoute().Subrouter()
	companyRoutes.Use(authMW.RequireCompany)

	companyRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	companyRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	companyRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")

	companyRoutes.HandleFunc("/companies/{companyId}/stats", statsHandler.CompanyStats).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/companies/{companyId}/insights", statsHandler.CompanyInsights).Methods("POST", "OPTIONS")
	companyRoutes.HandleFunc("/surveys/{surveyId}/analytics", statsHandler.SurveyAnalytics).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/surveys/{surveyId}/export", exportHandler.Export).Methods("GET", "OPTIONS")

	companyRoutes.HandleFunc("/demo-requests", crmHandler.ListDemoRequests).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/demo-requests/{requestId}/status", crmHandler.UpdateDemoRequestStatus).Methods("PUT", "OPTIONS")
	companyRoutes.HandleFunc("/notifications", crmHandler.ListNotifications).Methods("GET", "OPTIONS")
	companyRoutes.HandleFunc("/notifications/read", crmHandler.MarkNotificationsRead).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
