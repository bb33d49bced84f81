package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/zoombxu/surplus/internal/app"
	"github.com/zoombxu/surplus/internal/config"
	"github.com/zoombxu/surplus/internal/metrics"
	"github.com/zoombxu/surplus/internal/storage/postgres"
)

// Module registers HTTP router construction for the fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade   *app.StorefrontFacade
	Storage  *postgres.Storage
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Storage, p.Metrics, p.Registry, p.Config, p.Logger)
}
