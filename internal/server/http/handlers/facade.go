package handlers

import (
	"context"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/notify"
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Identify(ctx context.Context, name, phone string) (string, auth.Claims, error)
	AdminLogin(password string) (string, auth.Claims, error)
	ParseToken(token string) (auth.Claims, error)
}

// OrderFacade encapsulates customer order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, customerName, phone string, items []model.OrderItem, totalPrice string) (*model.Order, error)
	Orders(ctx context.Context, phone string) ([]model.Order, error)
	CancelOrder(ctx context.Context, phone, customerName, orderID string) (*model.Order, error)
	Profile(ctx context.Context, phone string) (*model.Profile, int, error)
}

// AdminOrderFacade encapsulates dashboard order operations.
type AdminOrderFacade interface {
	AllOrders(ctx context.Context) ([]model.Order, error)
	AdvanceOrder(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

// ChatFacade provides transcript operations.
type ChatFacade interface {
	SendMessage(ctx context.Context, claims auth.Claims, recipient, content string) (*model.Message, error)
	Transcript(ctx context.Context, participant string) ([]model.Message, error)
	ChatSessions(ctx context.Context) ([]model.ChatSession, error)
}

// CatalogFacade provides product catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	UploadImage(ctx context.Context, dataURI, folder string) (*imagehost.UploadResult, error)
}

// StreamFacade exposes live update subscriptions.
type StreamFacade interface {
	Subscribe(phone string, admin bool) *notify.Subscriber
	Unsubscribe(sub *notify.Subscriber)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	AdminOrderFacade
	ChatFacade
	CatalogFacade
	StreamFacade
}
