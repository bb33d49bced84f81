package test

import (
	"context"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/notify"
	"github.com/zoombxu/surplus/internal/pkg/auth"
)

// FacadeStub implements the handler-facing application surface with
// overridable functions for tests.
type FacadeStub struct {
	IdentifyFn      func(context.Context, string, string) (string, auth.Claims, error)
	AdminLoginFn    func(string) (string, auth.Claims, error)
	ParseTokenFn    func(string) (auth.Claims, error)
	PlaceOrderFn    func(context.Context, string, string, []model.OrderItem, string) (*model.Order, error)
	OrdersFn        func(context.Context, string) ([]model.Order, error)
	CancelOrderFn   func(context.Context, string, string, string) (*model.Order, error)
	ProfileFn       func(context.Context, string) (*model.Profile, int, error)
	AllOrdersFn     func(context.Context) ([]model.Order, error)
	AdvanceOrderFn  func(context.Context, string, model.OrderStatus) (*model.Order, error)
	DeleteOrderFn   func(context.Context, string) error
	SendMessageFn   func(context.Context, auth.Claims, string, string) (*model.Message, error)
	TranscriptFn    func(context.Context, string) ([]model.Message, error)
	ChatSessionsFn  func(context.Context) ([]model.ChatSession, error)
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, string) error
	UploadImageFn   func(context.Context, string, string) (*imagehost.UploadResult, error)

	Hub *notify.Hub
}

func (s *FacadeStub) Identify(ctx context.Context, name, phone string) (string, auth.Claims, error) {
	if s.IdentifyFn != nil {
		return s.IdentifyFn(ctx, name, phone)
	}
	return "token", auth.Claims{Subject: phone, Role: auth.RoleCustomer, Name: name}, nil
}

func (s *FacadeStub) AdminLogin(password string) (string, auth.Claims, error) {
	if s.AdminLoginFn != nil {
		return s.AdminLoginFn(password)
	}
	return "token", auth.Claims{Subject: "admin", Role: auth.RoleAdmin, Name: "Admin"}, nil
}

func (s *FacadeStub) ParseToken(token string) (auth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return auth.Claims{Subject: "09171234567", Role: auth.RoleCustomer, Name: "Juan"}, nil
}

func (s *FacadeStub) PlaceOrder(ctx context.Context, name, phone string, items []model.OrderItem, total string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, name, phone, items, total)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) Orders(ctx context.Context, phone string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, phone)
	}
	return nil, nil
}

func (s *FacadeStub) CancelOrder(ctx context.Context, phone, name, orderID string) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, phone, name, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) Profile(ctx context.Context, phone string) (*model.Profile, int, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, phone)
	}
	return &model.Profile{Phone: phone}, 0, nil
}

func (s *FacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) AdvanceOrder(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	if s.AdvanceOrderFn != nil {
		return s.AdvanceOrderFn(ctx, orderID, to)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) DeleteOrder(ctx context.Context, orderID string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, orderID)
	}
	return domainErrors.ErrNotFound
}

func (s *FacadeStub) SendMessage(ctx context.Context, claims auth.Claims, recipient, content string) (*model.Message, error) {
	if s.SendMessageFn != nil {
		return s.SendMessageFn(ctx, claims, recipient, content)
	}
	return nil, domainErrors.ErrEmptyMessage
}

func (s *FacadeStub) Transcript(ctx context.Context, participant string) ([]model.Message, error) {
	if s.TranscriptFn != nil {
		return s.TranscriptFn(ctx, participant)
	}
	return nil, nil
}

func (s *FacadeStub) ChatSessions(ctx context.Context) ([]model.ChatSession, error) {
	if s.ChatSessionsFn != nil {
		return s.ChatSessionsFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return product, nil
}

func (s *FacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return product, nil
}

func (s *FacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s *FacadeStub) UploadImage(ctx context.Context, dataURI, folder string) (*imagehost.UploadResult, error) {
	if s.UploadImageFn != nil {
		return s.UploadImageFn(ctx, dataURI, folder)
	}
	return &imagehost.UploadResult{URL: "https://cdn.example/x.png", PublicID: "x"}, nil
}

func (s *FacadeStub) Subscribe(phone string, admin bool) *notify.Subscriber {
	if s.Hub != nil {
		return s.Hub.Subscribe(phone, admin)
	}
	return &notify.Subscriber{Phone: phone, Admin: admin, C: make(chan notify.Event, 1)}
}

func (s *FacadeStub) Unsubscribe(sub *notify.Subscriber) {
	if s.Hub != nil {
		s.Hub.Unsubscribe(sub)
	}
}
