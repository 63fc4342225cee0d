package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/router"
)

const jwtSecret = "api-test-secret"

type apiEnv struct {
	t     *testing.T
	app   *fiber.App
	mr    *miniredis.Miniredis
	admin string
	user  string
	other string
}

func setupAPI(t *testing.T) *apiEnv {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("venue"),
		postgres.WithUsername("venue"),
		postgres.WithPassword("venue"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, pgContainer)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := database.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.SeedData(db)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	prevDB, prevRedis := database.DB, database.Redis
	database.DB, database.Redis = db, client
	t.Cleanup(func() {
		client.Close()
		database.DB, database.Redis = prevDB, prevRedis
	})

	t.Setenv("JWT_SECRET", jwtSecret)
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("PUBLIC_STORAGE_URL", "https://cdn.example.com/storage/")
	t.Setenv("TIMEZONE", "UTC")
	_, err = config.Load()
	require.NoError(t, err)

	users := []model.User{
		{Name: "Admin", Email: "admin@example.com", Role: constants.ROLE_ADMIN},
		{Name: "Alice Nguyen", Email: "alice@example.com"},
		{Name: "Bob Tran", Email: "bob@example.com"},
	}
	require.NoError(t, db.Create(&users).Error)

	app := fiber.New()
	router.SetupRoutes(app)

	env := &apiEnv{t: t, app: app, mr: mr}
	env.admin = env.token(users[0])
	env.user = env.token(users[1])
	env.other = env.token(users[2])
	return env
}

func TestAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	env := setupAPI(t)

	t.Run("order flow", func(t *testing.T) { testOrderFlow(t, env) })
	t.Run("create order validation", func(t *testing.T) { testCreateOrderValidation(t, env) })
	t.Run("content cache invalidation", func(t *testing.T) { testContentCacheInvalidation(t, env) })
	t.Run("list resources", func(t *testing.T) { testListResources(t, env) })
	t.Run("reviews and comments", func(t *testing.T) { testReviewsAndComments(t, env) })
}

func (e *apiEnv) token(u model.User) string {
	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: u.ID, Role: u.Role}, []byte(jwtSecret), time.Hour)
	require.NoError(e.t, err)
	return token
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func testOrderFlow(t *testing.T, e *apiEnv) {
	status, env := e.do(t, http.MethodPost, "/products", e.admin, map[string]any{
		"name":   "Carbon Rod",
		"price":  "12.50",
		"images": []string{"storage/products/rod.jpg"},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	product := decode[model.Product](t, env.Data)
	assert.Equal(t, "carbon-rod", product.Slug)
	require.NotNil(t, product.ImageURL)
	assert.Equal(t, "https://cdn.example.com/storage/products/rod.jpg", *product.ImageURL)

	status, env = e.do(t, http.MethodPost, "/packages", e.admin, map[string]any{
		"name":     "Family Day",
		"price":    "100.00",
		"features": map[string]any{"guests": 4},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	pkg := decode[model.Package](t, env.Data)

	status, _ = e.do(t, http.MethodPost, "/products", e.user, map[string]any{"name": "Nope", "price": "1"})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = e.do(t, http.MethodPost, "/orders/checkout", e.user, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = e.do(t, http.MethodPost, "/cart", e.user, map[string]any{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, status, env.Message)
	status, env = e.do(t, http.MethodPost, "/cart", e.user, map[string]any{"packageId": pkg.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = e.do(t, http.MethodPost, "/orders/checkout", e.user, map[string]any{})
	require.Equal(t, http.StatusCreated, status, env.Message)
	order := decode[helper.OrderView](t, env.Data)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, model.OrderTypeMixed, order.OrderType)
	assert.Equal(t, "125", order.Subtotal.String())
	assert.Equal(t, "137.5", order.Total.String())
	assert.Equal(t, "12.5", order.Tax.String())
	assert.Equal(t, "https://cdn.example.com/storage/products/rod.jpg", order.FirstItemImageURL)
	assert.NotEmpty(t, order.QRCode)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "25", order.Items[0].TotalPrice.String())

	status, env = e.do(t, http.MethodGet, "/cart", e.user, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"items":[],"subtotal":"0"}`, string(env.Data))

	path := fmt.Sprintf("/orders/%d", order.ID)
	status, _ = e.do(t, http.MethodGet, path, e.other, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = e.do(t, http.MethodGet, path, e.admin, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = e.do(t, http.MethodGet, "/admin/orders?search=alice&range=today", e.admin, nil)
	require.Equal(t, http.StatusOK, status)
	page := decode[struct {
		Rows       []helper.OrderView `json:"rows"`
		TotalCount int64              `json:"totalCount"`
	}](t, env.Data)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, order.ID, page.Rows[0].ID)

	status, _ = e.do(t, http.MethodGet, "/admin/orders?range=yesterday", e.admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = e.do(t, http.MethodPatch, path+"/complete", e.admin, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, model.OrderCompleted, decode[helper.OrderView](t, env.Data).Status)

	status, _ = e.do(t, http.MethodPatch, path+"/cancel", e.admin, nil)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = e.do(t, http.MethodPatch, "/admin/orders/999999/complete", e.admin, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// the snapshot outlives the catalog row
	status, _ = e.do(t, http.MethodDelete, "/packages", e.admin, map[string]any{"ids": []uint{pkg.ID}})
	require.Equal(t, http.StatusOK, status)
	status, env = e.do(t, http.MethodGet, path, e.user, nil)
	require.Equal(t, http.StatusOK, status)
	detail := decode[helper.OrderView](t, env.Data)
	assert.Equal(t, "Family Day", detail.Items[1].ItemName)
	assert.Equal(t, config.Current().PlaceholderImage, detail.Items[1].ImageURL)
}

func testCreateOrderValidation(t *testing.T, e *apiEnv) {
	status, _ := e.do(t, http.MethodPost, "/orders", e.user, map[string]any{
		"items": []map[string]any{{"itemType": "voucher", "itemId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = e.do(t, http.MethodPost, "/orders", e.user, map[string]any{
		"items": []map[string]any{{"itemType": "product", "itemId": 999999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = e.do(t, http.MethodPost, "/orders", "", map[string]any{"items": []any{}})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func testContentCacheInvalidation(t *testing.T, e *apiEnv) {
	status, env := e.do(t, http.MethodGet, "/content/fishing", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Fishing", decode[model.FishingCms](t, env.Data).Title)
	assert.True(t, e.mr.Exists(constants.CACHE_KEY_FISHING_CMS))

	status, env = e.do(t, http.MethodPut, "/content/fishing", e.admin, map[string]any{"title": "Catch & release", "rules": "No nets"})
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.False(t, e.mr.Exists(constants.CACHE_KEY_FISHING_CMS))

	status, env = e.do(t, http.MethodGet, "/content/fishing", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Catch & release", decode[model.FishingCms](t, env.Data).Title)
}

func testListResources(t *testing.T, e *apiEnv) {
	status, env := e.do(t, http.MethodPost, "/tables", e.admin, map[string]any{"number": "C1", "seats": 6, "isActive": false})
	require.Equal(t, http.StatusCreated, status, env.Message)
	table := decode[model.TableNumber](t, env.Data)
	assert.False(t, table.IsActive)

	status, env = e.do(t, http.MethodPost, "/tables", e.admin, map[string]any{"number": "C2", "seats": 2})
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.True(t, decode[model.TableNumber](t, env.Data).IsActive)

	status, env = e.do(t, http.MethodPut, fmt.Sprintf("/tables/%d", table.ID), e.admin, map[string]any{"number": "C1", "seats": 8})
	require.Equal(t, http.StatusOK, status, env.Message)
	updated := decode[model.TableNumber](t, env.Data)
	assert.Equal(t, 8, updated.Seats)
	assert.False(t, updated.IsActive)

	status, env = e.do(t, http.MethodPost, "/team-members", e.admin, map[string]any{"name": "Linh", "photo": "team/linh.png"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	member := decode[model.TeamMember](t, env.Data)
	require.NotNil(t, member.PhotoURL)
	assert.Equal(t, "https://cdn.example.com/storage/team/linh.png", *member.PhotoURL)

	status, env = e.do(t, http.MethodGet, "/durations", "", nil)
	require.Equal(t, http.StatusOK, status)
	durations := decode[[]model.Duration](t, env.Data)
	require.NotEmpty(t, durations)
	assert.Equal(t, 60, durations[0].Minutes)

	status, _ = e.do(t, http.MethodPost, "/durations", e.admin, map[string]any{"label": "Free", "minutes": 30, "price": "-5"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func testReviewsAndComments(t *testing.T, e *apiEnv) {
	status, env := e.do(t, http.MethodPost, "/products", e.admin, map[string]any{"name": "Bait Box", "price": "3.00"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	product := decode[model.Product](t, env.Data)
	reviews := fmt.Sprintf("/products/%d/reviews", product.ID)

	for _, rating := range []int{5, 4} {
		status, env = e.do(t, http.MethodPost, reviews, e.user, map[string]any{"rating": rating, "comment": "good"})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}
	status, _ = e.do(t, http.MethodPost, reviews, e.user, map[string]any{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = e.do(t, http.MethodPost, "/products/999999/reviews", e.user, map[string]any{"rating": 3})
	assert.Equal(t, http.StatusNotFound, status)

	status, env = e.do(t, http.MethodGet, reviews, "", nil)
	require.Equal(t, http.StatusOK, status)
	summary := decode[struct {
		Summary model.ReviewSummary `json:"summary"`
	}](t, env.Data).Summary
	assert.Equal(t, int64(2), summary.Count)
	assert.InDelta(t, 4.5, summary.Average, 0.001)

	status, env = e.do(t, http.MethodPost, "/comments", e.user, map[string]any{"body": "Great spot"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	comment := decode[model.Comment](t, env.Data)

	status, _ = e.do(t, http.MethodPost, fmt.Sprintf("/comments/%d/replies", comment.ID), e.admin, map[string]any{"body": "Thanks!"})
	require.Equal(t, http.StatusCreated, status)

	status, env = e.do(t, http.MethodGet, "/comments", "", nil)
	require.Equal(t, http.StatusOK, status)
	page := decode[struct {
		Rows []model.Comment `json:"rows"`
	}](t, env.Data)
	require.NotEmpty(t, page.Rows)
	require.Len(t, page.Rows[0].Replies, 1)
	assert.Equal(t, "Thanks!", page.Rows[0].Replies[0].Body)
}
