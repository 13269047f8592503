package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/cache"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/catalog"
	apperrors "github.com/ZanzyTHEbar/cine-rec-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/middleware"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/ratelimit"
	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// serverDeps bundles everything setupRouter needs so tests can build a
// router around a synthetic catalog.
type serverDeps struct {
	recommender *analysis.Recommender
	cache       *cache.Cache
	limiter     *ratelimit.RateLimiter
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	port := getEnvOrDefault("PORT", "8080")
	catalogPath := getEnvOrDefault("CATALOG_PATH", "./data/imdb_top_1000.csv")
	clusterCount := getEnvIntOrDefault("CLUSTERS", analysis.DefaultClusterCount)
	topN := getEnvIntOrDefault("TOP_N", 10)
	cacheTTL := time.Duration(getEnvIntOrDefault("CACHE_TTL_MINUTES", 15)) * time.Minute
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvIntOrDefault("REDIS_DB", 0)
	ipLimit := getEnvIntOrDefault("IP_RATE_LIMIT_PER_MIN", 60)

	// Load the catalog once; it is read-only for the lifetime of the process
	loadStart := time.Now()
	records, err := catalog.Load(catalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", catalogPath, "error", err)
		os.Exit(1)
	}

	appLogger := monitoring.NewLogger()
	appLogger.CatalogLogger(catalogPath, len(records), time.Since(loadStart))

	opts := analysis.DefaultOptions()
	opts.ClusterCount = clusterCount
	opts.TopN = topN
	recommender := analysis.NewRecommender(records, opts)

	appMetrics := monitoring.NewMetrics()

	// Cache keys are scoped to the loaded catalog so a different dataset
	// never serves stale entries
	fingerprint := fmt.Sprintf("%s:%d", catalogPath, len(records))
	appCache := cache.NewCache(cacheTTL, fingerprint)

	// Redis is optional; the limiter degrades to in-memory token buckets
	redisClient, err := ratelimit.NewRedisClient(redisAddr, redisPassword, redisDB)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()

	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.IPLimitPerMin = ipLimit
	limiter := ratelimit.NewRateLimiter(redisClient, limiterConfig, appMetrics)

	deps := &serverDeps{
		recommender: recommender,
		cache:       appCache,
		limiter:     limiter,
		metrics:     appMetrics,
		logger:      appLogger,
	}

	r := setupRouter(deps)

	// Performance profiling endpoints (development only)
	if os.Getenv("ENABLE_PROFILING") == "true" {
		slog.Info("Enabling performance profiling endpoints")
		r.GET("/debug/pprof/*filepath", gin.WrapF(pprof.Index))
		r.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
		r.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
		r.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
		r.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port, "catalog_records", len(records))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// setupRouter wires the middleware chain and routes.
func setupRouter(deps *serverDeps) *gin.Engine {
	r := gin.New()

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	// Monitoring middleware first to capture all requests
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(deps.metrics, deps.logger))

	// Error handling middleware
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())

	// Security middleware
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ValidateContentType())

	// Rate limiting and response caching on the hot path
	r.Use(deps.limiter.IPRateLimitMiddleware())
	r.Use(deps.cache.Middleware(deps.metrics))

	r.POST("/recommendations", deps.handleRecommendations)
	r.GET("/catalog/clusters", deps.handleClusters)
	r.GET("/genres", deps.handleGenres)

	r.GET("/health", deps.handleHealth)

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.metrics.GetStats())
	})

	// Cache stats endpoint
	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.cache.Stats())
	})

	// Rate limiter stats endpoint
	r.GET("/ratelimit/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.limiter.GetStats())
	})

	return r
}

// handleRecommendations runs the full pipeline for one request.
func (d *serverDeps) handleRecommendations(c *gin.Context) {
	start := time.Now()

	var req types.RecommendRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("invalid request body")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	normalizeRequest(&req)

	if appErr := validateRequest(&req); appErr != nil {
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	result, err := d.recommender.Recommend(analysis.FiltersFromRequest(req))
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, analysis.ErrTooFewDistinctPoints) {
			appErr = apperrors.NewConfigurationError(
				"cluster count exceeds the number of distinct feature points", err)
		} else {
			appErr = apperrors.NewInternalError("recommendation pipeline failed", err)
		}
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	d.metrics.IncrementPipelineRun()
	d.logger.PipelineLogger(req.Genre, len(d.recommender.Catalog()), len(result.Top),
		result.Metrics.Precision, time.Since(start), false)

	response := gin.H{
		"recommendations": result.Top,
		"metrics":         result.Metrics,
		"summary":         result.Summary,
	}
	if len(result.Top) == 0 {
		response["message"] = "no recommendations matched the filters"
	}

	c.JSON(http.StatusOK, response)
}

// handleClusters returns the fully clustered catalog for the scatter chart.
func (d *serverDeps) handleClusters(c *gin.Context) {
	result, err := d.recommender.Recommend(analysis.Filters{
		Genre:    analysis.GenreAll,
		Actor:    analysis.FilterAll,
		Director: analysis.FilterAll,
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.Is(err, analysis.ErrTooFewDistinctPoints) {
			appErr = apperrors.NewConfigurationError(
				"cluster count exceeds the number of distinct feature points", err)
		} else {
			appErr = apperrors.NewInternalError("clustering failed", err)
		}
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clusters": result.Clustered,
		"count":    len(result.Clustered),
	})
}

// handleGenres returns the distinct genre labels for filter dropdowns.
func (d *serverDeps) handleGenres(c *gin.Context) {
	genres := append([]string{analysis.GenreAll}, d.recommender.Genres()...)
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// handleHealth reports service status and a metrics snapshot.
func (d *serverDeps) handleHealth(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK
	if len(d.recommender.Catalog()) == 0 {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":          status,
		"timestamp":       time.Now().Format(time.RFC3339),
		"version":         "1.0.0",
		"catalog_records": len(d.recommender.Catalog()),
		"metrics":         d.metrics.GetStats(),
	})
}

// normalizeRequest maps absent filter fields onto their sentinels.
func normalizeRequest(req *types.RecommendRequest) {
	if strings.TrimSpace(req.Genre) == "" {
		req.Genre = analysis.GenreAll
	}
	if strings.TrimSpace(req.Actor) == "" {
		req.Actor = analysis.FilterAll
	}
	if strings.TrimSpace(req.Director) == "" {
		req.Director = analysis.FilterAll
	}
}

// validateRequest rejects parameter combinations the pipeline cannot honor.
func validateRequest(req *types.RecommendRequest) *apperrors.AppError {
	if req.MinRating < 0 || req.MinRating > 10 {
		return apperrors.NewValidationError("min_rating must be between 0 and 10")
	}
	if req.YearFrom < 0 || req.YearTo < 0 {
		return apperrors.NewValidationError("year bounds must not be negative")
	}
	if req.YearFrom != 0 && req.YearTo != 0 && req.YearFrom > req.YearTo {
		return apperrors.NewValidationError(
			"year_from must not be greater than year_to, got " +
				strconv.Itoa(req.YearFrom) + ".." + strconv.Itoa(req.YearTo))
	}
	return nil
}

// Helper function for environment variables with defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", value)
	}
	return defaultValue
}
