package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/get_product"
	"github.com/CimeM/shellLeatherStore/internal/app/store/queries/list_products"
	"github.com/CimeM/shellLeatherStore/internal/app/store/repo"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/add_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/clear_cart"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/place_order"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/remove_item"
	"github.com/CimeM/shellLeatherStore/internal/app/store/usecases/update_quantity"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/tests/testutil"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, *checkout.OrderSummary, string) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *testutil.FakeCartRepo, *clock.MockClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	saleStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	sale, err := domain.NewDiscount("summer", "Summer Sale", "", 20, true, saleStart, saleEnd, []string{"wallet"})
	require.NoError(t, err)

	cat := testutil.NewTestCatalog(t,
		[]*domain.Product{
			testutil.NewTestProduct(t, "wallet", 85, "brown", "black"),
			testutil.NewTestProduct(t, "belt", 95, "brown"),
		},
		[]*domain.Discount{sale},
	)

	clk := clock.NewMockClock(time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC))
	calc := pricing.NewCalculator(cat)
	cartRepo := testutil.NewFakeCartRepo()
	outbox := testutil.NewFakeOutboxRepo()
	applier := testutil.NewFakeApplier()
	composer := checkout.NewComposer(cat, calc)
	readModel := repo.NewCatalogReadModel(cat, calc, clk)

	catalogHandler := NewCatalogHandler(
		list_products.NewQuery(readModel),
		get_product.NewQuery(readModel),
	)
	cartHandler := NewCartHandler(
		get_cart.NewQuery(cartRepo, clk),
		add_item.NewInteractor(cat, cartRepo, outbox, applier, clk),
		update_quantity.NewInteractor(cartRepo, outbox, applier, clk),
		remove_item.NewInteractor(cartRepo, outbox, applier, clk),
		clear_cart.NewInteractor(cartRepo, outbox, applier, clk),
		cat,
		calc,
		clk,
	)
	checkoutHandler := NewCheckoutHandler(place_order.NewInteractor(
		composer, cartRepo, outbox, applier, nopDispatcher{}, clk,
		"hello@shell.rivieraapps.com", zap.NewNop(),
	))

	router := NewRouter(zap.NewNop(), catalogHandler, cartHandler, checkoutHandler)
	return router, cartRepo, clk
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartView {
	t.Helper()
	var view CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestListProducts(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("lists the whole catalog", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/products", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Products []ProductResponse `json:"products"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Products, 2)

		wallet := resp.Products[0]
		assert.Equal(t, "wallet", wallet.ID)
		assert.Equal(t, 85.0, wallet.Price)
		assert.Equal(t, 68.0, wallet.EffectivePrice)
		require.NotNil(t, wallet.DiscountPercent)
		assert.Equal(t, 20.0, *wallet.DiscountPercent)

		belt := resp.Products[1]
		assert.Equal(t, 95.0, belt.EffectivePrice)
		assert.Nil(t, belt.DiscountPercent)
	})

	t.Run("filters by category", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/products?category=belts", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Products []ProductResponse `json:"products"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "belt", resp.Products[0].ID)
	})
}

func TestGetProduct(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/products/wallet", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "wallet", resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/products/ghost", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSessionHeader(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("mints a session when the client sends none", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/cart", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(SessionHeader))
	})

	t.Run("echoes the client session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/cart", "my-session", "")
		assert.Equal(t, "my-session", w.Header().Get(SessionHeader))
	})
}

func TestCartFlow(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("empty cart for a fresh session", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/cart", "s1", "")
		require.Equal(t, http.StatusOK, w.Code)

		view := decodeCart(t, w)
		assert.Empty(t, view.Items)
		assert.Equal(t, "0.00", view.Total)
	})

	t.Run("add item defaults quantity to one", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s2",
			`{"product_id":"wallet","color":"brown"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		view := decodeCart(t, w)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(1), view.Items[0].Quantity)
		assert.Equal(t, "68.00", view.Items[0].UnitPrice)
		assert.True(t, view.Items[0].Discounted)
	})

	t.Run("add, update, remove round trip", func(t *testing.T) {
		session := "s3"

		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session,
			`{"product_id":"wallet","color":"brown","quantity":2}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session,
			`{"product_id":"belt","color":"brown","quantity":1}`)
		require.Equal(t, http.StatusCreated, w.Code)
		view := decodeCart(t, w)
		// 2 x 68 + 95
		assert.Equal(t, "231.00", view.Total)

		w = doJSON(t, router, http.MethodPatch, "/api/v1/cart/items", session,
			`{"product_id":"wallet","color":"brown","quantity":1}`)
		require.Equal(t, http.StatusOK, w.Code)
		view = decodeCart(t, w)
		assert.Equal(t, "163.00", view.Total)

		w = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items?product_id=belt&color=brown", session, "")
		require.Equal(t, http.StatusOK, w.Code)
		view = decodeCart(t, w)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "68.00", view.Total)

		w = doJSON(t, router, http.MethodDelete, "/api/v1/cart", session, "")
		require.Equal(t, http.StatusOK, w.Code)
		view = decodeCart(t, w)
		assert.Empty(t, view.Items)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s4",
			`{"product_id":"ghost","color":"brown"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("color not offered is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s5",
			`{"product_id":"wallet","color":"purple"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative quantity on add is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", "s6",
			`{"product_id":"wallet","color":"brown","quantity":-2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove without query params is a 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items", "s7", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckout(t *testing.T) {
	customerJSON := `{
		"full_name": "Marie Dupont",
		"email": "marie@example.com",
		"address": "12 Rue des Oliviers",
		"city": "Nice",
		"postal_code": "06000",
		"country": "France"
	}`

	t.Run("places the order and returns the mailto link", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		session := "buyer"

		w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", session,
			`{"product_id":"wallet","color":"brown","quantity":2}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", session, customerJSON)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp OrderResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "136.00", resp.Total)
		assert.True(t, strings.HasPrefix(resp.MailtoLink, "mailto:hello@shell.rivieraapps.com?"))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Summer Sale", resp.Items[0].DiscountName)

		// The cart is empty afterwards.
		w = doJSON(t, router, http.MethodGet, "/api/v1/cart", session, "")
		view := decodeCart(t, w)
		assert.Empty(t, view.Items)
	})

	t.Run("empty cart is a 400", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/v1/checkout", "nobody", customerJSON)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields is a 400", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		w := doJSON(t, router, http.MethodPost, "/api/v1/checkout", "nobody", `{"email":"x@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
