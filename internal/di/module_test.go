package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	"github.com/zoombxu/surplus/internal/app"
	"github.com/zoombxu/surplus/internal/config"
	"github.com/zoombxu/surplus/internal/domain/repository"
	"github.com/zoombxu/surplus/internal/storage/postgres"
	"github.com/zoombxu/surplus/internal/test"
)

type imageClientStub struct{}

func (imageClientStub) Upload(context.Context, string, string) (*imagehost.UploadResult, error) {
	return &imagehost.UploadResult{URL: "https://cdn.example/x.png", PublicID: "x"}, nil
}

func (imageClientStub) Delete(context.Context, string) error { return nil }

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		AuthSecret:       "secret",
		AuthTokenTTL:     time.Hour,
		AdminPassword:    "hunter2",
		ImageHostAddress: "http://localhost",
		ImageHostKey:     "key",
		AllowedOrigins:   []string{"*"},
		ShutdownTimeout:  time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orders := test.NewOrderRepositoryStub()
	profiles := test.NewProfileRepositoryStub()
	messages := &test.MessageRepositoryStub{}
	products := test.NewProductRepositoryStub()
	storage := &postgres.Storage{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(storage),
			fx.Replace(fx.Annotate(storage, fx.As(new(repository.Factory)))),
			fx.Replace(fx.Annotate(orders, fx.As(new(repository.OrderRepository)))),
			fx.Replace(fx.Annotate(profiles, fx.As(new(repository.ProfileRepository)))),
			fx.Replace(fx.Annotate(messages, fx.As(new(repository.MessageRepository)))),
			fx.Replace(fx.Annotate(products, fx.As(new(repository.ProductRepository)))),
			fx.Replace(fx.Annotate(imageClientStub{}, fx.As(new(imagehost.Client)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
