package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory and lets tests override
// individual operations.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) error
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	ListByPhoneFn  func(context.Context, string) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, model.OrderStatus) (*model.Order, error)
	DeleteFn       func(context.Context, string) error

	Orders map[string]*model.Order
}

// NewOrderRepositoryStub constructs stub with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if _, exists := s.Orders[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, phone string) ([]model.Order, error) {
	if s.ListByPhoneFn != nil {
		return s.ListByPhoneFn(ctx, phone)
	}
	var orders []model.Order
	for _, order := range s.Orders {
		if order.CustomerPhone == phone {
			orders = append(orders, *order)
		}
	}
	sortOrders(orders)
	return orders, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	var orders []model.Order
	for _, order := range s.Orders {
		orders = append(orders, *order)
	}
	sortOrders(orders)
	return orders, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status != from {
		return nil, domainErrors.ErrConflict
	}
	order.Status = to
	copied := *order
	return &copied, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

func sortOrders(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// ProfileRepositoryStub stores penalty profiles in-memory.
type ProfileRepositoryStub struct {
	GetByPhoneFn     func(context.Context, string) (*model.Profile, error)
	CreateIfAbsentFn func(context.Context, string) (*model.Profile, error)
	UpdateFn         func(context.Context, string, int, *time.Time) (*model.Profile, error)

	Profiles map[string]*model.Profile
}

// NewProfileRepositoryStub constructs stub with an initialized map.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{Profiles: make(map[string]*model.Profile)}
}

func (s *ProfileRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.Profile, error) {
	if s.GetByPhoneFn != nil {
		return s.GetByPhoneFn(ctx, phone)
	}
	if profile, ok := s.Profiles[phone]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProfileRepositoryStub) CreateIfAbsent(ctx context.Context, phone string) (*model.Profile, error) {
	if s.CreateIfAbsentFn != nil {
		return s.CreateIfAbsentFn(ctx, phone)
	}
	if profile, ok := s.Profiles[phone]; ok {
		copied := *profile
		return &copied, nil
	}
	profile := &model.Profile{Phone: phone}
	s.Profiles[phone] = profile
	copied := *profile
	return &copied, nil
}

func (s *ProfileRepositoryStub) Update(ctx context.Context, phone string, cancellationCount int, penaltyUntil *time.Time) (*model.Profile, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, phone, cancellationCount, penaltyUntil)
	}
	profile, ok := s.Profiles[phone]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	profile.CancellationCount = cancellationCount
	profile.PenaltyUntil = penaltyUntil
	copied := *profile
	return &copied, nil
}

// MessageRepositoryStub stores the transcript in-memory.
type MessageRepositoryStub struct {
	AppendFn     func(context.Context, *model.Message) error
	TranscriptFn func(context.Context, string) ([]model.Message, error)
	SessionsFn   func(context.Context) ([]model.ChatSession, error)

	Messages []model.Message
}

func (s *MessageRepositoryStub) Append(ctx context.Context, message *model.Message) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, message)
	}
	s.Messages = append(s.Messages, *message)
	return nil
}

func (s *MessageRepositoryStub) Transcript(ctx context.Context, participant string) ([]model.Message, error) {
	if s.TranscriptFn != nil {
		return s.TranscriptFn(ctx, participant)
	}
	var messages []model.Message
	for _, m := range s.Messages {
		if m.SenderID == participant || m.RecipientID == participant {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (s *MessageRepositoryStub) Sessions(ctx context.Context) ([]model.ChatSession, error) {
	if s.SessionsFn != nil {
		return s.SessionsFn(ctx)
	}
	latest := make(map[string]model.Message)
	for _, m := range s.Messages {
		if m.SenderID == model.AdminParticipant {
			continue
		}
		if prev, ok := latest[m.SenderID]; !ok || m.CreatedAt.After(prev.CreatedAt) {
			latest[m.SenderID] = m
		}
	}
	var sessions []model.ChatSession
	for _, m := range latest {
		sessions = append(sessions, model.ChatSession{
			SenderID:    m.SenderID,
			SenderName:  m.SenderName,
			LastMessage: m.Content,
			LastActive:  m.CreatedAt,
		})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActive.After(sessions[j].LastActive)
	})
	return sessions, nil
}

// ProductRepositoryStub stores catalog entries in-memory.
type ProductRepositoryStub struct {
	CreateFn func(context.Context, *model.Product) error
	GetFn    func(context.Context, string) (*model.Product, error)
	ListFn   func(context.Context) ([]model.Product, error)
	UpdateFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn func(context.Context, string) error

	Products map[string]*model.Product
}

// NewProductRepositoryStub constructs stub with an initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[string]*model.Product)}
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if _, exists := s.Products[product.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *product
	s.Products[product.ID] = &stored
	return nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	var products []model.Product
	for _, product := range s.Products {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.Products[product.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}
