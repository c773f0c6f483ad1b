package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lusotech/storefront/internal/cart"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/model"
	"github.com/lusotech/storefront/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	byID map[string]*model.Product
}

func (s *stubProducts) GetProduct(_ context.Context, id string) (*model.Product, error) {
	return s.byID[id], nil
}

func (s *stubProducts) CreateProduct(context.Context, *dto.CreateProductInput) (*model.Product, error) {
	panic("not used")
}

func (s *stubProducts) ListProducts(context.Context, *dto.ProductFilters) ([]model.Product, int, error) {
	panic("not used")
}

func (s *stubProducts) FeaturedProducts(context.Context, int) ([]model.Product, error) {
	panic("not used")
}

func (s *stubProducts) UpdateProduct(context.Context, *dto.UpdateProductInput) (*model.Product, error) {
	panic("not used")
}

func (s *stubProducts) DeleteProduct(context.Context, string) error {
	panic("not used")
}

type memStorage struct{}

func (memStorage) Load(context.Context, string) ([]cart.Item, error) { return nil, nil }
func (memStorage) Save(context.Context, string, []cart.Item) error   { return nil }

func newHandler(t *testing.T, products map[string]*model.Product) *CartHandler {
	t.Helper()
	manager := cart.NewManager(memStorage{}, logger.NewNop())
	return NewCartHandler(manager, &stubProducts{byID: products}, "https://wa.me", "5215550001111", 3600, logger.NewNop())
}

func mux(h *CartHandler) *http.ServeMux {
	m := http.NewServeMux()
	h.Register(m)
	return m
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, m *http.ServeMux, method, target, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestGetCart_MintsSessionCookie(t *testing.T) {
	m := mux(newHandler(t, nil))

	rec, env := do(t, m, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cart_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAddItem(t *testing.T) {
	stock := 5
	m := mux(newHandler(t, map[string]*model.Product{
		"p1": {BaseModel: model.BaseModel{ID: "p1"}, Name: "Cable HDMI", Price: 10, Stock: stock},
	}))

	rec, env := do(t, m, http.MethodPost, "/api/cart/items", `{"product_id":"p1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state cart.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 10.0, state.TotalAmount)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	m := mux(newHandler(t, nil))

	rec, env := do(t, m, http.MethodPost, "/api/cart/items", `{"product_id":"nope"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestAddItem_OutOfStock(t *testing.T) {
	m := mux(newHandler(t, map[string]*model.Product{
		"p1": {BaseModel: model.BaseModel{ID: "p1"}, Name: "Agotado", Price: 10, Stock: 0},
	}))

	rec, env := do(t, m, http.MethodPost, "/api/cart/items", `{"product_id":"p1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "producto sin stock", env.Message)
}

func TestCartFlow_SameSession(t *testing.T) {
	m := mux(newHandler(t, map[string]*model.Product{
		"p1": {BaseModel: model.BaseModel{ID: "p1"}, Name: "Cable HDMI", Price: 10, Stock: 5},
	}))

	rec, _ := do(t, m, http.MethodPost, "/api/cart/items", `{"product_id":"p1"}`, nil)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Quantity update rides the same session.
	rec, env := do(t, m, http.MethodPut, "/api/cart/items/p1", `{"quantity":3}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var state cart.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 3, state.TotalItems)

	// A request without the cookie sees a different, empty cart.
	_, env = do(t, m, http.MethodGet, "/api/cart", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Empty(t, state.Items)

	rec, env = do(t, m, http.MethodDelete, "/api/cart", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Empty(t, state.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	m := mux(newHandler(t, nil))

	rec, env := do(t, m, http.MethodPost, "/api/cart/checkout", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "el carrito está vacío", env.Message)
}

func TestCheckout(t *testing.T) {
	m := mux(newHandler(t, map[string]*model.Product{
		"p1": {BaseModel: model.BaseModel{ID: "p1"}, Name: "Cable HDMI", Price: 10, Stock: 5},
	}))

	rec, _ := do(t, m, http.MethodPost, "/api/cart/items", `{"product_id":"p1"}`, nil)
	cookies := rec.Result().Cookies()

	rec, env := do(t, m, http.MethodPost, "/api/cart/checkout", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		WhatsAppURL string `json:"whatsapp_url"`
		Message     string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.True(t, strings.HasPrefix(payload.WhatsAppURL, "https://wa.me/5215550001111?text="), payload.WhatsAppURL)
	assert.Contains(t, payload.Message, "Cable HDMI")
}
