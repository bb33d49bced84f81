package di

import (
	"go.uber.org/fx"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	"github.com/zoombxu/surplus/internal/app"
	"github.com/zoombxu/surplus/internal/config"
	"github.com/zoombxu/surplus/internal/logger"
	"github.com/zoombxu/surplus/internal/metrics"
	"github.com/zoombxu/surplus/internal/notify"
	"github.com/zoombxu/surplus/internal/pkg/auth"
	"github.com/zoombxu/surplus/internal/server/http/router"
	"github.com/zoombxu/surplus/internal/storage/postgres"
	"github.com/zoombxu/surplus/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		imagehost.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
