package imagehost

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/zoombxu/surplus/internal/config"
)

// Module provides the image host client via fx.
var Module = fx.Options(
	fx.Provide(newClient),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.ImageHostAddress, p.Config.ImageHostKey, p.Logger)
}
