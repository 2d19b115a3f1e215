package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltstore/entities"
	"voltstore/handlers"
	"voltstore/repository"
	"voltstore/services"
	"voltstore/store"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	st := store.NewSeeded()
	snapshots := repository.NewMemorySnapshotRepository()
	sessions := repository.NewMemorySessionRepository()

	us := services.NewUserService(st, snapshots, sessions)
	require.NoError(t, us.EnsureDemoUsers())

	ha := handlers.NewHandler(handlers.HandlerParams{
		UsrService: us,
		PrdService: services.NewProductService(st, snapshots),
		CrtService: services.NewCartService(st, snapshots),
		ColService: services.NewCollectionService(st, snapshots),
		OrdService: services.NewOrderService(st, snapshots),
		SetService: services.NewSettingsService(st, snapshots),
		WshService: services.NewWishlistService(st, snapshots),
	})

	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	subAuth := router.NewRoute().Subrouter()
	subAuth.Use(ha.AuthMiddleware)
	subAdmin := router.NewRoute().Subrouter()
	subAdmin.Use(ha.AdminAuthMiddleware)

	router.HandleFunc("/auth/register", ha.Register).Methods("POST")
	router.HandleFunc("/auth/login", ha.Login).Methods("POST")
	subAuth.HandleFunc("/auth/me", ha.Me).Methods("GET")

	router.HandleFunc("/products", ha.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")
	subAdmin.HandleFunc("/products", ha.CreateProduct).Methods("POST")

	router.HandleFunc("/cart", ha.GetCart).Methods("GET")
	router.HandleFunc("/cart", ha.AddToCart).Methods("POST")
	router.HandleFunc("/cart/coupon", ha.ApplyCoupon).Methods("POST")
	router.HandleFunc("/cart/totals", ha.GetTotals).Methods("GET")
	subAuth.HandleFunc("/checkout", ha.Checkout).Methods("POST")

	subAdmin.HandleFunc("/orders", ha.GetOrders).Methods("GET")

	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *mux.Router, email, password string) *http.Cookie {
	t.Helper()

	rec := doJSON(t, router, "POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionId" {
			return c
		}
	}
	t.Fatal("no sessionId cookie in login response")
	return nil
}

func TestGetProducts(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/products", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var products []entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 24)
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/products/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginSetsCookieAndHidesHash(t *testing.T) {
	router := newTestRouter(t)

	cookie := login(t, router, "demo@volt.com", "demo123")
	assert.NotEmpty(t, cookie.Value)

	rec := doJSON(t, router, "GET", "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.Contains(t, rec.Body.String(), "demo@volt.com")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/auth/login", map[string]string{
		"email":    "demo@volt.com",
		"password": "nope",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]string{"email": "new@example.com", "password": "pw", "name": "New"}
	rec := doJSON(t, router, "POST", "/auth/register", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "POST", "/auth/register", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/checkout", entities.CheckoutInfo{}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireAdminSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := login(t, router, "admin@volt.com", "admin123")
	rec = doJSON(t, router, "GET", "/orders", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "demo@volt.com", "demo123")

	rec := doJSON(t, router, "POST", "/cart", map[string]any{
		"productId": 1, "size": "M", "color": "Black", "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "POST", "/cart/coupon", map[string]string{"code": "volt10"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/cart/totals", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var totals entities.Totals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 24000, totals.Subtotal)
	assert.Equal(t, 2400, totals.Discount)

	rec = doJSON(t, router, "POST", "/checkout", entities.CheckoutInfo{
		Email:     "demo@volt.com",
		FirstName: "Juan",
		LastName:  "Pérez",
		Address:   "Av. Santa Fe 2000",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var order entities.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 24600, order.Total) // 24000 - 2400 + 3000 shipping
	assert.Equal(t, entities.OrderPending, order.Status)

	rec = doJSON(t, router, "GET", "/cart", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart entities.CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Lines)
}

func TestApplyCouponErrorCodes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/cart", map[string]any{
		"productId": 1, "size": "M", "color": "Black", "quantity": 1,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "POST", "/cart/coupon", map[string]string{"code": "NOPE"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// WELCOME20 needs a 30000 subtotal; the cart holds 12000.
	rec = doJSON(t, router, "POST", "/cart/coupon", map[string]string{"code": "WELCOME20"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateProductAsAdmin(t *testing.T) {
	router := newTestRouter(t)
	cookie := login(t, router, "admin@volt.com", "admin123")

	rec := doJSON(t, router, "POST", "/products", map[string]any{
		"name":  "Remera Test Drop",
		"price": 14000,
		"stock": 10,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var created entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 25, created.Id)
	assert.Equal(t, "remera-test-drop", created.Slug)
}
