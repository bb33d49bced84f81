package app

import (
	"context"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/notify"
	"github.com/zoombxu/surplus/internal/pkg/auth"
	"github.com/zoombxu/surplus/internal/usecase"
)

// StorefrontFacade is the single application surface the HTTP layer talks
// to. It delegates to the use cases and the live update hub.
type StorefrontFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	chat    *usecase.ChatUseCase
	catalog *usecase.CatalogUseCase
	hub     *notify.Hub
}

func NewStorefrontFacade(
	authUC *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	chat *usecase.ChatUseCase,
	catalog *usecase.CatalogUseCase,
	hub *notify.Hub,
) *StorefrontFacade {
	return &StorefrontFacade{auth: authUC, orders: orders, chat: chat, catalog: catalog, hub: hub}
}

func (f *StorefrontFacade) Identify(ctx context.Context, name, phone string) (string, auth.Claims, error) {
	return f.auth.Identify(ctx, name, phone)
}

func (f *StorefrontFacade) AdminLogin(password string) (string, auth.Claims, error) {
	return f.auth.AdminLogin(password)
}

func (f *StorefrontFacade) ParseToken(token string) (auth.Claims, error) {
	return f.auth.Authenticate(token)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, customerName, phone string, items []model.OrderItem, totalPrice string) (*model.Order, error) {
	return f.orders.Place(ctx, customerName, phone, items, totalPrice)
}

func (f *StorefrontFacade) Orders(ctx context.Context, phone string) ([]model.Order, error) {
	return f.orders.ListForCustomer(ctx, phone)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, phone, customerName, orderID string) (*model.Order, error) {
	return f.orders.Cancel(ctx, phone, customerName, orderID)
}

func (f *StorefrontFacade) AdvanceOrder(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, orderID, to)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, orderID string) error {
	return f.orders.Delete(ctx, orderID)
}

func (f *StorefrontFacade) Profile(ctx context.Context, phone string) (*model.Profile, int, error) {
	return f.orders.ProfileFor(ctx, phone)
}

func (f *StorefrontFacade) SendMessage(ctx context.Context, claims auth.Claims, recipient, content string) (*model.Message, error) {
	return f.chat.Send(ctx, claims, recipient, content)
}

func (f *StorefrontFacade) Transcript(ctx context.Context, participant string) ([]model.Message, error) {
	return f.chat.Transcript(ctx, participant)
}

func (f *StorefrontFacade) ChatSessions(ctx context.Context) ([]model.ChatSession, error) {
	return f.chat.Sessions(ctx)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) UploadImage(ctx context.Context, dataURI, folder string) (*imagehost.UploadResult, error) {
	return f.catalog.UploadImage(ctx, dataURI, folder)
}

func (f *StorefrontFacade) Subscribe(phone string, admin bool) *notify.Subscriber {
	return f.hub.Subscribe(phone, admin)
}

func (f *StorefrontFacade) Unsubscribe(sub *notify.Subscriber) {
	f.hub.Unsubscribe(sub)
}
