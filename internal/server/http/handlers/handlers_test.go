package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/adapter/imagehost"
	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/pkg/auth"
	"github.com/zoombxu/surplus/internal/server/http/dto"
	"github.com/zoombxu/surplus/internal/server/http/middleware"
	testhelpers "github.com/zoombxu/surplus/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	return performRouteRequest(t, method, path, path, handler, setup, body)
}

func performRouteRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCustomer(c *gin.Context) {
	c.Set(middleware.ClaimsContextKey, auth.Claims{Subject: "09171234567", Role: auth.RoleCustomer, Name: "Juan"})
}

func asAdmin(c *gin.Context) {
	c.Set(middleware.ClaimsContextKey, auth.Claims{Subject: "admin", Role: auth.RoleAdmin, Name: "Admin"})
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestIdentifyReturnsToken(t *testing.T) {
	h := NewAuthHandler(&testhelpers.FacadeStub{})

	body := mustJSON(t, dto.IdentifyRequest{Name: "Juan", Phone: "09171234567"})
	w := performRequest(t, http.MethodPost, "/api/auth/identify", h.Identify, nil, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.Role != auth.RoleCustomer || resp.Phone != "09171234567" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if got := w.Header().Get("Authorization"); got != "Bearer "+resp.Token {
		t.Fatalf("auth header not set: %q", got)
	}
}

func TestIdentifyRejectsBadIdentity(t *testing.T) {
	facade := &testhelpers.FacadeStub{IdentifyFn: func(context.Context, string, string) (string, auth.Claims, error) {
		return "", auth.Claims{}, domainErrors.ErrInvalidCustomer
	}}
	h := NewAuthHandler(facade)

	body := mustJSON(t, dto.IdentifyRequest{Name: "Juan", Phone: "bad"})
	w := performRequest(t, http.MethodPost, "/api/auth/identify", h.Identify, nil, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	facade := &testhelpers.FacadeStub{AdminLoginFn: func(string) (string, auth.Claims, error) {
		return "", auth.Claims{}, domainErrors.ErrInvalidCredentials
	}}
	h := NewAuthHandler(facade)

	body := mustJSON(t, dto.AdminLoginRequest{Password: "wrong"})
	w := performRequest(t, http.MethodPost, "/api/admin/login", h.AdminLogin, nil, body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPlaceOrderCreated(t *testing.T) {
	facade := &testhelpers.FacadeStub{PlaceOrderFn: func(ctx context.Context, name, phone string, items []model.OrderItem, total string) (*model.Order, error) {
		if name != "Juan" || phone != "09171234567" {
			t.Errorf("identity must come from claims, got %q %q", name, phone)
		}
		order := testhelpers.PendingOrder("o1", phone)
		order.Items = items
		order.TotalPrice = total
		return order, nil
	}}
	h := NewOrderHandler(facade)

	body := mustJSON(t, dto.PlaceOrderRequest{
		Items:      []dto.OrderItemPayload{{Name: "Alternator", Quantity: 1, Price: "₱2,500"}},
		TotalPrice: "₱2,500",
	})
	w := performRequest(t, http.MethodPost, "/api/orders", h.Place, asCustomer, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "pending" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestPlaceOrderRestricted(t *testing.T) {
	facade := &testhelpers.FacadeStub{PlaceOrderFn: func(context.Context, string, string, []model.OrderItem, string) (*model.Order, error) {
		return nil, &domainErrors.OrderingRestrictedError{RemainingMinutes: 7}
	}}
	h := NewOrderHandler(facade)

	body := mustJSON(t, dto.PlaceOrderRequest{
		Items:      []dto.OrderItemPayload{{Name: "Alternator", Quantity: 1}},
		TotalPrice: "₱2,500",
	})
	w := performRequest(t, http.MethodPost, "/api/orders", h.Place, asCustomer, body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if minutes, _ := resp["remainingMinutes"].(float64); int(minutes) != 7 {
		t.Fatalf("expected remainingMinutes 7, got %v", resp["remainingMinutes"])
	}
}

func TestPlaceOrderRejectsEmpty(t *testing.T) {
	facade := &testhelpers.FacadeStub{PlaceOrderFn: func(context.Context, string, string, []model.OrderItem, string) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyOrder
	}}
	h := NewOrderHandler(facade)

	body := mustJSON(t, dto.PlaceOrderRequest{})
	w := performRequest(t, http.MethodPost, "/api/orders", h.Place, asCustomer, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCancelOrderOK(t *testing.T) {
	facade := &testhelpers.FacadeStub{CancelOrderFn: func(ctx context.Context, phone, name, orderID string) (*model.Order, error) {
		order := testhelpers.PendingOrder(orderID, phone)
		order.Status = model.OrderStatusCancelled
		return order, nil
	}}
	h := NewOrderHandler(facade)

	w := performRequest(t, http.MethodPost, "/api/orders/o1/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.CancelOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "cancelled" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.Warning != "" {
		t.Fatalf("clean cancellation must not warn, got %q", resp.Warning)
	}
}

func TestCancelOrderPenaltyFailureWarns(t *testing.T) {
	facade := &testhelpers.FacadeStub{CancelOrderFn: func(ctx context.Context, phone, name, orderID string) (*model.Order, error) {
		order := testhelpers.PendingOrder(orderID, phone)
		order.Status = model.OrderStatusCancelled
		return order, domainErrors.ErrPenaltyNotApplied
	}}
	h := NewOrderHandler(facade)

	w := performRequest(t, http.MethodPost, "/api/orders/o1/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite penalty failure, got %d", w.Code)
	}

	var resp dto.CancelOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "cancelled" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.Warning != "cancellation partially applied" {
		t.Fatalf("expected partial-application warning, got %q", resp.Warning)
	}
}

func TestCancelOrderConflicts(t *testing.T) {
	facade := &testhelpers.FacadeStub{CancelOrderFn: func(context.Context, string, string, string) (*model.Order, error) {
		return nil, &domainErrors.NotCancellableError{Status: model.OrderStatusProcessing}
	}}
	h := NewOrderHandler(facade)

	w := performRequest(t, http.MethodPost, "/api/orders/o1/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestCancelOrderForeign(t *testing.T) {
	facade := &testhelpers.FacadeStub{CancelOrderFn: func(context.Context, string, string, string) (*model.Order, error) {
		return nil, domainErrors.ErrForbidden
	}}
	h := NewOrderHandler(facade)

	w := performRequest(t, http.MethodPost, "/api/orders/o1/cancel", h.Cancel, asCustomer, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestProfileReportsRestriction(t *testing.T) {
	facade := &testhelpers.FacadeStub{ProfileFn: func(ctx context.Context, phone string) (*model.Profile, int, error) {
		return &model.Profile{Phone: phone, CancellationCount: 2}, 95, nil
	}}
	h := NewOrderHandler(facade)

	w := performRequest(t, http.MethodGet, "/api/profile", h.Profile, asCustomer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.ProfileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CancellationCount != 2 || resp.RestrictedMinutes != 95 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAdminUpdateStatusConflict(t *testing.T) {
	facade := &testhelpers.FacadeStub{AdvanceOrderFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
		return nil, &domainErrors.InvalidTransitionError{From: model.OrderStatusCompleted, To: model.OrderStatusProcessing}
	}}
	h := NewAdminOrderHandler(facade)

	body := mustJSON(t, dto.StatusUpdateRequest{Status: "processing"})
	w := performRequest(t, http.MethodPatch, "/api/admin/orders/o1/status", h.UpdateStatus, asAdmin, body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestAdminDeleteOrder(t *testing.T) {
	facade := &testhelpers.FacadeStub{DeleteOrderFn: func(context.Context, string) error { return nil }}
	h := NewAdminOrderHandler(facade)

	w := performRequest(t, http.MethodDelete, "/api/admin/orders/o1", h.Delete, asAdmin, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCatalogCreateInvalid(t *testing.T) {
	facade := &testhelpers.FacadeStub{CreateProductFn: func(context.Context, *model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrInvalidProduct
	}}
	h := NewCatalogHandler(facade)

	body := mustJSON(t, dto.ProductPayload{Name: ""})
	w := performRequest(t, http.MethodPost, "/api/admin/products", h.Create, asAdmin, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCatalogUpdateUsesPathID(t *testing.T) {
	facade := &testhelpers.FacadeStub{UpdateProductFn: func(ctx context.Context, product *model.Product) (*model.Product, error) {
		if product.ID != "p1" {
			t.Errorf("expected path id, got %q", product.ID)
		}
		return product, nil
	}}
	h := NewCatalogHandler(facade)

	body := mustJSON(t, dto.ProductPayload{Name: "Brake pads", Price: "₱1,200"})
	w := performRouteRequest(t, http.MethodPut, "/api/admin/products/:id", "/api/admin/products/p1", h.Update, asAdmin, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChatSendEmpty(t *testing.T) {
	facade := &testhelpers.FacadeStub{SendMessageFn: func(context.Context, auth.Claims, string, string) (*model.Message, error) {
		return nil, domainErrors.ErrEmptyMessage
	}}
	h := NewChatHandler(facade)

	body := mustJSON(t, dto.SendMessageRequest{Content: "  "})
	w := performRequest(t, http.MethodPost, "/api/messages", h.Send, asCustomer, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChatAdminSessionSend(t *testing.T) {
	facade := &testhelpers.FacadeStub{SendMessageFn: func(ctx context.Context, claims auth.Claims, recipient, content string) (*model.Message, error) {
		if recipient != "09171234567" {
			t.Errorf("recipient must come from the path, got %q", recipient)
		}
		return &model.Message{ID: "m1", SenderID: model.AdminParticipant, RecipientID: recipient, Content: content, IsAdmin: true}, nil
	}}
	h := NewChatHandler(facade)

	body := mustJSON(t, dto.SendMessageRequest{Content: "still in stock"})
	w := performRouteRequest(t, http.MethodPost, "/api/admin/chats/:phone/messages", "/api/admin/chats/09171234567/messages", h.SessionSend, asAdmin, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestUploadRejected(t *testing.T) {
	facade := &testhelpers.FacadeStub{UploadImageFn: func(context.Context, string, string) (*imagehost.UploadResult, error) {
		return nil, imagehost.ErrRejected
	}}
	h := NewCatalogHandler(facade)

	body := mustJSON(t, dto.UploadRequest{Data: "garbage"})
	w := performRequest(t, http.MethodPost, "/api/admin/uploads", h.Upload, asAdmin, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestUploadCreated(t *testing.T) {
	h := NewCatalogHandler(&testhelpers.FacadeStub{})

	body := mustJSON(t, dto.UploadRequest{Data: "data:image/png;base64,AAAA", Folder: "products"})
	w := performRequest(t, http.MethodPost, "/api/admin/uploads", h.Upload, asAdmin, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp dto.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.URL == "" {
		t.Fatal("expected hosted url")
	}
}

func TestHealthDegraded(t *testing.T) {
	h := NewHealthHandler(pingerStub{err: errors.New("db down")})
	w := performRequest(t, http.MethodGet, "/api/health", h.Check, nil, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	h = NewHealthHandler(pingerStub{})
	w = performRequest(t, http.MethodGet, "/api/health", h.Check, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

type pingerStub struct {
	err error
}

func (p pingerStub) HealthCheck(context.Context) error { return p.err }
