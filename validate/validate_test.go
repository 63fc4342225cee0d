package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue_manager/model"
)

func newTestApp(method, path string, mw fiber.Handler, key string) *fiber.App {
	app := fiber.New()
	app.Add(method, path, mw, func(c *fiber.Ctx) error {
		return c.JSON(c.Locals(key))
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestGetById(t *testing.T) {
	app := newTestApp(http.MethodGet, "/orders/:orderId", GetById("orderId"), "inputId")

	status, _ := doJSON(t, app, http.MethodGet, "/orders/12", "")
	assert.Equal(t, http.StatusOK, status)

	for _, bad := range []string{"/orders/abc", "/orders/0", "/orders/-3"} {
		status, body := doJSON(t, app, http.MethodGet, bad, "")
		assert.Equal(t, http.StatusBadRequest, status, bad)
		assert.NotEmpty(t, body["message"])
	}
}

func TestDelete(t *testing.T) {
	app := newTestApp(http.MethodDelete, "/orders", Delete(), "deleteIds")

	status, body := doJSON(t, app, http.MethodDelete, "/orders", `{"ids":[1,2]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{float64(1), float64(2)}, body["ids"])

	status, _ = doJSON(t, app, http.MethodDelete, "/orders", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateOrderInput(t *testing.T) {
	app := newTestApp(http.MethodPost, "/orders", Body[model.CreateOrderInput](), "input")

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"items":[{"itemType":"product","itemId":1,"quantity":2}]}`, http.StatusOK},
		{"override price", `{"items":[{"itemType":"package","itemId":3,"quantity":1,"itemPrice":"0.00"}]}`, http.StatusOK},
		{"no items", `{"items":[]}`, http.StatusBadRequest},
		{"unknown type", `{"items":[{"itemType":"voucher","itemId":1,"quantity":1}]}`, http.StatusBadRequest},
		{"zero quantity", `{"items":[{"itemType":"product","itemId":1,"quantity":0}]}`, http.StatusBadRequest},
		{"negative price", `{"items":[{"itemType":"product","itemId":1,"quantity":1,"itemPrice":"-1.00"}]}`, http.StatusBadRequest},
		{"malformed", `{"items":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := doJSON(t, app, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestOrderFilter(t *testing.T) {
	app := newTestApp(http.MethodGet, "/admin/orders", OrderFilter(), "filter")

	status, body := doJSON(t, app, http.MethodGet, "/admin/orders?search=alice&range=this_week&status=Pending&limit=10&page=2", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["search"])
	assert.Equal(t, float64(10), body["limit"])

	status, _ = doJSON(t, app, http.MethodGet, "/admin/orders?range=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodGet, "/admin/orders?status=shipped", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAddToCart(t *testing.T) {
	app := newTestApp(http.MethodPost, "/cart", AddToCart(), "input")

	status, _ := doJSON(t, app, http.MethodPost, "/cart", `{"productId":4,"quantity":1}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/cart", `{"packageId":4,"quantity":2}`)
	assert.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPost, "/cart", `{"productId":4,"packageId":2,"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, errCartTarget.Error(), body["error"])

	status, _ = doJSON(t, app, http.MethodPost, "/cart", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/cart", `{"productId":4,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDecimalRules(t *testing.T) {
	app := newTestApp(http.MethodPost, "/durations", Body[model.DurationInput](), "input")

	status, _ := doJSON(t, app, http.MethodPost, "/durations", `{"label":"1 hour","minutes":60,"price":"50000"}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/durations", `{"label":"1 hour","minutes":60,"price":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestBody(t *testing.T) {
	app := newTestApp(http.MethodPost, "/reviews", Body[model.CreateReviewInput](), "input")

	status, body := doJSON(t, app, http.MethodPost, "/reviews", `{"rating":5,"comment":"great lake"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["rating"])

	status, _ = doJSON(t, app, http.MethodPost, "/reviews", `{"rating":6}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
