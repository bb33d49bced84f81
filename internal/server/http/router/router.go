package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/zoombxu/surplus/internal/config"
	"github.com/zoombxu/surplus/internal/metrics"
	"github.com/zoombxu/surplus/internal/server/http/handlers"
	"github.com/zoombxu/surplus/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(
	facade handlers.StorefrontFacade,
	pinger handlers.Pinger,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	cfg *config.Config,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(corsMiddleware(cfg.AllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminOrderHandler := handlers.NewAdminOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)
	streamHandler := handlers.NewStreamHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(pinger)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)

	loginLimiter := middleware.RateLimit(rate.Every(time.Second), 5)
	api.POST("/auth/identify", loginLimiter, authHandler.Identify)
	api.POST("/admin/login", loginLimiter, authHandler.AdminLogin)

	customer := api.Group("")
	customer.Use(middleware.AuthRequired(facade))
	customer.POST("/orders", orderHandler.Place)
	customer.GET("/orders", orderHandler.List)
	customer.POST("/orders/:id/cancel", orderHandler.Cancel)
	customer.GET("/profile", orderHandler.Profile)
	customer.GET("/messages", chatHandler.List)
	customer.POST("/messages", chatHandler.Send)
	customer.GET("/ws", streamHandler.Serve)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminOnly())
	admin.GET("/orders", adminOrderHandler.List)
	admin.PATCH("/orders/:id/status", adminOrderHandler.UpdateStatus)
	admin.DELETE("/orders/:id", adminOrderHandler.Delete)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.DELETE("/products/:id", catalogHandler.Delete)
	admin.POST("/uploads", catalogHandler.Upload)
	admin.GET("/chats", chatHandler.Sessions)
	admin.GET("/chats/:phone/messages", chatHandler.SessionTranscript)
	admin.POST("/chats/:phone/messages", chatHandler.SessionSend)
	admin.GET("/ws", streamHandler.Serve)

	return engine
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Encoding"},
		ExposeHeaders:    []string{"Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: true,
	}
	if len(origins) == 1 && origins[0] == "*" {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}
