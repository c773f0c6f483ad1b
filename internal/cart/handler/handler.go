package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/lusotech/storefront/internal/cart"
	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/product"
	"go.uber.org/zap"
)

const sessionCookie = "cart_session"

type CartHandler struct {
	manager       *cart.Manager
	products      product.UseCase
	whatsAppBase  string
	whatsAppPhone string
	cookieMaxAge  int
	logger        logger.Logger
}

func NewCartHandler(manager *cart.Manager, products product.UseCase, whatsAppBase, whatsAppPhone string, cookieMaxAge int, log logger.Logger) *CartHandler {
	return &CartHandler{
		manager:       manager,
		products:      products,
		whatsAppBase:  whatsAppBase,
		whatsAppPhone: whatsAppPhone,
		cookieMaxAge:  cookieMaxAge,
		logger:        log,
	}
}

func (h *CartHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/cart", h.Get)
	mux.HandleFunc("POST /api/cart/items", h.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /api/cart", h.Clear)
	mux.HandleFunc("POST /api/cart/checkout", h.Checkout)
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	store := h.store(w, r)
	httputil.OK(w, "Carrito obtenido", store.State())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID string `json:"product_id"`
	}
	if err := httputil.Decode(r, &input); err != nil || input.ProductID == "" {
		httputil.Error(w, http.StatusBadRequest, "product_id es requerido")
		return
	}

	p, err := h.products.GetProduct(r.Context(), input.ProductID)
	if err != nil {
		h.logger.Error("failed to load product for cart", zap.Error(err))
		httputil.Error(w, http.StatusInternalServerError, "error interno del servidor")
		return
	}
	if p == nil {
		httputil.Error(w, http.StatusNotFound, product.ErrNotFound.Error())
		return
	}
	if p.Stock < 1 {
		httputil.Error(w, http.StatusBadRequest, "producto sin stock")
		return
	}

	store := h.store(w, r)
	store.Add(cart.Product{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Stock:           p.Stock,
		ImageURL:        p.ImageURL,
		CategoryName:    p.CategoryName,
		SubcategoryName: p.SubcategoryName,
	})
	httputil.OK(w, "Producto agregado al carrito", store.State())
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	store := h.store(w, r)
	store.SetQuantity(r.PathValue("id"), input.Quantity)
	httputil.OK(w, "Carrito actualizado", store.State())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store := h.store(w, r)
	store.Remove(r.PathValue("id"))
	httputil.OK(w, "Producto eliminado del carrito", store.State())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store := h.store(w, r)
	store.Clear()
	httputil.OK(w, "Carrito vaciado", store.State())
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	store := h.store(w, r)

	message := cart.Message(store.State())
	if message == "" {
		httputil.Error(w, http.StatusBadRequest, "el carrito está vacío")
		return
	}

	httputil.OK(w, "Pedido listo para enviar", map[string]interface{}{
		"whatsapp_url": cart.MessageURL(h.whatsAppBase, h.whatsAppPhone, message),
		"message":      message,
	})
}

// store resolves the caller's session cart, minting the session cookie on
// first contact.
func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) *cart.Store {
	key := ""
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		key = c.Value
	}
	if key == "" {
		key = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    key,
			Path:     "/",
			MaxAge:   h.cookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.manager.Get(r.Context(), key)
}
