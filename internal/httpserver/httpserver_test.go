package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/giannis-supplies/storefront/internal/account"
	"github.com/giannis-supplies/storefront/internal/cart"
	"github.com/giannis-supplies/storefront/internal/catalog"
	"github.com/giannis-supplies/storefront/internal/order"
	"github.com/giannis-supplies/storefront/internal/store"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Store  *store.Store
	Cart   *cart.Service
	Orders *order.Service
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	records, err := store.New(db)
	require.NoError(t, err)

	products := catalog.Default()
	cartService := &cart.Service{Store: records, Catalog: products}
	accountService := &account.Service{Store: records}
	orderService := &order.Service{Store: records, Cart: cartService}

	secret := []byte("test-jwt-secret")

	e := echo.New()
	Register(e, &Deps{
		Products:  &ProductHTTP{Catalog: products},
		Cart:      &CartHTTP{Svc: cartService},
		Auth:      &AuthHTTP{Svc: accountService, JWTSecret: secret},
		Orders:    &OrderHTTP{Svc: orderService},
		JWTSecret: secret,
	})

	return &testEnv{
		T:      t,
		E:      e,
		Store:  records,
		Cart:   cartService,
		Orders: orderService,
		Secret: secret,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func registerPayload() map[string]string {
	return map[string]string{
		"fullname":         "Gianni Rossi",
		"email":            "gianni@example.com",
		"dob":              "1985-04-12",
		"username":         "gianni_r",
		"password":         "trimmers",
		"confirm_password": "trimmers",
	}
}

func checkoutPayload() map[string]any {
	return map[string]any{
		"customer": map[string]string{
			"name":    "Gianni Rossi",
			"email":   "gianni@example.com",
			"address": "12 Via Roma",
			"city":    "Naples",
			"phone":   "555-0142",
		},
		"payment": map[string]string{
			"method":      "credit",
			"card_name":   "Gianni Rossi",
			"card_number": "4111111111111111",
		},
	}
}
