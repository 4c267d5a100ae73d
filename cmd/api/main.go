package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/getmentor/mentor-aggregator/config"
	"github.com/getmentor/mentor-aggregator/internal/handlers"
	"github.com/getmentor/mentor-aggregator/internal/middleware"
	"github.com/getmentor/mentor-aggregator/internal/platforms"
	"github.com/getmentor/mentor-aggregator/internal/services"
	"github.com/getmentor/mentor-aggregator/pkg/adplist"
	"github.com/getmentor/mentor-aggregator/pkg/calcom"
	"github.com/getmentor/mentor-aggregator/pkg/calendly"
	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/getmentor/mentor-aggregator/pkg/mentorcruise"
	"github.com/getmentor/mentor-aggregator/pkg/metrics"
	"github.com/getmentor/mentor-aggregator/pkg/profiling"
	"github.com/getmentor/mentor-aggregator/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// buildRegistry creates the platform clients that have credentials and
// registers one adapter per marketplace
func buildRegistry(cfg *config.Config, httpClient httpclient.Client, opts platforms.Options) (*platforms.Registry, *platforms.CalendarRouter) {
	var (
		adplistClient      *adplist.Client
		mentorcruiseClient *mentorcruise.Client
		calendlyClient     *calendly.Client
		calcomClient       *calcom.Client
	)
	if cfg.ADPList.Configured() {
		adplistClient = adplist.NewClient(cfg.ADPList.BaseURL, cfg.ADPList.APIKey, httpClient)
	}
	if cfg.MentorCruise.Configured() {
		mentorcruiseClient = mentorcruise.NewClient(cfg.MentorCruise.BaseURL, cfg.MentorCruise.APIKey, httpClient)
	}
	if cfg.Calendly.Configured() {
		calendlyClient = calendly.NewClient(cfg.Calendly.BaseURL, cfg.Calendly.APIKey, httpClient)
	}
	if cfg.CalCom.Configured() {
		calcomClient = calcom.NewClient(cfg.CalCom.BaseURL, cfg.CalCom.APIKey, httpClient)
	}

	logger.Info("Platform integrations",
		zap.Bool("adplist", adplistClient != nil),
		zap.Bool("mentorcruise", mentorcruiseClient != nil),
		zap.Bool("calendly", calendlyClient != nil),
		zap.Bool("calcom", calcomClient != nil),
		zap.Bool("live", opts.Production),
	)

	calendlyBackend := platforms.NewCalendlyBackend(calendlyClient, opts)
	calcomBackend := platforms.NewCalComBackend(calcomClient, opts)

	registry := platforms.NewRegistry(
		platforms.NewADPListAdapter(adplistClient, calendlyBackend, opts),
		platforms.NewMentorCruiseAdapter(mentorcruiseClient, calcomBackend, opts),
	)
	return registry, platforms.NewCalendarRouter(calendlyBackend, calcomBackend)
}

// registerAPIRoutes registers the mentor routes on the v1 group
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, actionRateLimiter *middleware.RateLimiter,
	mentorHandler *handlers.MentorHandler,
	bookingHandler *handlers.BookingHandler,
	messageHandler *handlers.MessageHandler,
) {
	group.GET("/mentors", generalRateLimiter.Middleware(), mentorHandler.GetMentors)
	group.GET("/mentors/:id", generalRateLimiter.Middleware(), mentorHandler.GetMentor)
	group.GET("/mentors/:id/availability", generalRateLimiter.Middleware(), bookingHandler.GetAvailability)
	group.POST("/mentors/:id/schedule", actionRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), bookingHandler.ScheduleMeeting)
	group.POST("/mentors/:id/messages", actionRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(32*1024), messageHandler.SendMessage)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Mentor Aggregator API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Config{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiling, err := profiling.Start(cfg)
	if err != nil {
		logger.Error("Failed to start profiler", zap.Error(err))
	} else {
		defer stopProfiling()
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics(rootCtx)

	// Initialize HTTP client for external API calls
	httpClient := httpclient.NewStandardClient(time.Duration(cfg.HTTPClient.TimeoutSeconds) * time.Second)

	production := cfg.IsProduction()
	registry, calendars := buildRegistry(cfg, httpClient, platforms.Options{Production: production})

	// Initialize services
	serviceOpts := services.Options{Production: production}
	mentorService := services.NewMentorService(registry, serviceOpts)
	bookingService := services.NewBookingService(mentorService, registry, calendars, serviceOpts)
	messageService := services.NewMessageService(mentorService, registry, serviceOpts)

	// Initialize handlers
	mentorHandler := handlers.NewMentorHandler(mentorService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	messageHandler := handlers.NewMessageHandler(messageService)
	healthHandler := handlers.NewHealthHandler(production)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, middleware.RequestIDHeader, "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	generalRateLimiter := middleware.NewRateLimiter(rootCtx, 50, 100) // 50 req/sec, burst of 100
	actionRateLimiter := middleware.NewRateLimiter(rootCtx, 2, 5)     // bookings and messages

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyMiddleware(cfg.Auth.FrontendAPIToken))
	registerAPIRoutes(v1, generalRateLimiter, actionRateLimiter, mentorHandler, bookingHandler, messageHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-rootCtx.Done()
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
