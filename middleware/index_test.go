package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue_manager/config"
	"venue_manager/helper"
	"venue_manager/model"
)

const testSecret = "middleware-secret"

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	_, err := config.Load()
	require.NoError(t, err)

	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": CurrentUserID(c), "admin": IsAdmin(c)})
	}
	app.Get("/me", Protected(), whoami)
	app.Get("/admin", Protected(), AdminOnly(), whoami)
	app.Get("/public", OptionalAuth(), whoami)
	return app
}

func signed(t *testing.T, claim model.TokenClaim) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(claim, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return token
}

func call(t *testing.T, app *fiber.App, path string, setup func(*http.Request)) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func TestProtected(t *testing.T) {
	app := setupAuthApp(t)

	status, _ := call(t, app, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "/me", bearer("garbage"))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := call(t, app, "/me", bearer(signed(t, model.TokenClaim{UserId: 7, Role: "customer"})))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"userId":7,"admin":false}`, body)

	cookieToken := signed(t, model.TokenClaim{UserId: 9, Role: "customer"})
	status, body = call(t, app, "/me", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: cookieToken})
	})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"userId":9,"admin":false}`, body)
}

func TestAdminOnly(t *testing.T) {
	app := setupAuthApp(t)

	status, _ := call(t, app, "/admin", bearer(signed(t, model.TokenClaim{UserId: 7, Role: "customer"})))
	assert.Equal(t, http.StatusForbidden, status)

	status, body := call(t, app, "/admin", bearer(signed(t, model.TokenClaim{UserId: 1, Role: "admin"})))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"userId":1,"admin":true}`, body)
}

func TestOptionalAuth(t *testing.T) {
	app := setupAuthApp(t)

	status, body := call(t, app, "/public", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"userId":0,"admin":false}`, body)

	_, body = call(t, app, "/public", bearer("garbage"))
	assert.JSONEq(t, `{"userId":0,"admin":false}`, body)

	_, body = call(t, app, "/public", bearer(signed(t, model.TokenClaim{UserId: 3, Role: "admin"})))
	assert.JSONEq(t, `{"userId":3,"admin":true}`, body)
}
