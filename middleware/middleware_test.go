package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"hr-records-backend/config"
	"hr-records-backend/lib/rbac"
	authutils "hr-records-backend/lib/utils/auth-utils"
	"hr-records-backend/models"
)

func testApp() *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 60
	rbac.NewHandler()

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Use(RbacMiddleware())
	ok := func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx) + ":" + string(GetUserRole(ctx)))
	}
	app.Get("/api/v1/awards/list", ok)
	app.Post("/api/v1/awards", ok)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string) (int, string) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAuthAndRbac(t *testing.T) {
	app := testApp()

	t.Run(`no token`, func(t *testing.T) {
		status, _ := call(t, app, http.MethodGet, "/api/v1/awards/list", "")
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run(`refresh token is not an access token`, func(t *testing.T) {
		token, err := authutils.GetRefreshToken("u1")
		require.NoError(t, err)
		status, _ := call(t, app, http.MethodGet, "/api/v1/awards/list", token)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run(`employee can view`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "Ivan", models.EmployeeRole)
		require.NoError(t, err)
		status, body := call(t, app, http.MethodGet, "/api/v1/awards/list", token)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "u1:EMPLOYEE", body)
	})

	t.Run(`employee can not create`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "Ivan", models.EmployeeRole)
		require.NoError(t, err)
		status, body := call(t, app, http.MethodPost, "/api/v1/awards", token)
		require.Equal(t, http.StatusForbidden, status)
		require.Contains(t, body, "RBAC_FORBIDDEN")
	})

	t.Run(`hr can create`, func(t *testing.T) {
		token, err := authutils.GetToken("u2", "Olga", models.HRRole)
		require.NoError(t, err)
		status, _ := call(t, app, http.MethodPost, "/api/v1/awards", token)
		require.Equal(t, http.StatusOK, status)
	})

	t.Run(`unknown role`, func(t *testing.T) {
		token, err := authutils.GetToken("u3", "X", models.UserRole("ROOT"))
		require.NoError(t, err)
		status, _ := call(t, app, http.MethodGet, "/api/v1/awards/list", token)
		require.Equal(t, http.StatusForbidden, status)
	})
}

func TestBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 100)))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("aaaaa"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
