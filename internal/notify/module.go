package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

const defaultBuffer = 64

// Module provides the live update hub and ties it to the fx lifecycle.
var Module = fx.Options(
	fx.Provide(newHub),
	fx.Invoke(registerHub),
)

type hubParams struct {
	fx.In

	Logger *slog.Logger
}

func newHub(p hubParams) *Hub {
	return NewHub(defaultBuffer, p.Logger)
}

type registerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Hub       *Hub
}

func registerHub(p registerParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Hub.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Hub.Stop()
			return nil
		},
	})
}
