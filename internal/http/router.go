// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, rate limiting, and the storage readiness gate.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Every /api route refused with 503 while storage is unreachable
package httpapi

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/config"
	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/http/handlers"
	"github.com/ndevra/go-chatbot-backend/internal/http/middleware"
	"github.com/ndevra/go-chatbot-backend/internal/repo"
	"github.com/ndevra/go-chatbot-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability, body limits, rate limiting, CORS and security
// headers, static assets (frontend entry points and the upload namespace),
// and the /api surface gated on storage readiness.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter (50MB default; uploads arrive inline)
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, files services.FileStore, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Static frontend entry points and the managed upload namespace.
	r.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	r.StaticFile("/admin", filepath.Join(cfg.StaticDir, "admin.html"))
	r.Static("/uploads", cfg.UploadDir)

	// Dependency injection: services ← repo/db/files
	chatSvc := services.NewChatRecordService(db)
	chatSvc.ListTimeout = cfg.ListTimeout
	chatSvc.DateLocale = language.Make(cfg.DateLocale)

	visitorSvc := newCounter(db, domain.CounterVisitor, cfg.Counter)
	questionSvc := newCounter(db, domain.CounterQuestionRequest, cfg.Counter)
	gallerySvc := services.NewGalleryService(db, files)

	chatH := handlers.NewChatRecordHandler(chatSvc)
	galleryH := handlers.NewGalleryHandler(gallerySvc)
	visitorH := handlers.NewCounterHandler(visitorSvc, handlers.VisitorMessages)
	questionH := handlers.NewCounterHandler(questionSvc, handlers.QuestionRequestMessages)

	// Public API: gzip-compressed and refused with 503 while storage is down.
	api := r.Group("/api",
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RequireReady(func(c *gin.Context) error {
			return repo.Ping(c.Request.Context(), db)
		}),
	)
	{
		// Visitor counter
		api.GET("/visitor", visitorH.Get)
		api.POST("/visitor", visitorH.Increment)
		api.POST("/visitor/reset", visitorH.Reset)

		// Question-request counter
		api.GET("/questions/request", questionH.Get)
		api.POST("/questions/request", questionH.Increment)
		api.POST("/questions/request/reset", questionH.Reset)

		// Chat records
		api.GET("/data", chatH.List)
		api.POST("/data", chatH.Create)
		api.POST("/data/:id/increment", chatH.IncrementQuestion)
		api.GET("/questions/total-count", chatH.Totals)
		api.DELETE("/data/:id", chatH.Delete)

		// Carousel gallery
		api.GET("/carousel", galleryH.List)
		api.POST("/carousel", galleryH.Create)
		api.POST("/carousel/upload", galleryH.Upload)
		api.POST("/carousel/upload-base64", galleryH.UploadBase64)
		api.DELETE("/carousel/:id", galleryH.Delete)
	}
}

// newCounter builds a CounterService for kind with the configured policy.
func newCounter(db *gorm.DB, kind string, cc config.CounterConfig) *services.CounterService {
	svc := services.NewCounterService(db, kind)
	svc.MaxAttempts = cc.MaxAttempts
	svc.RetryDelay = cc.RetryDelay
	svc.OpTimeout = cc.OpTimeout
	return svc
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
