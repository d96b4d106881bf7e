package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogger(t *testing.T) {
	logger, buf := testLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger:   logger,
		Tags:     []string{TagStatus, TagMethod, TagPath, TagBody, TagUserID},
		SkipBody: []string{"/auth/login"},
	}))
	app.Post("/auth/login", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	})
	app.Post("/awards", func(c *fiber.Ctx) error {
		c.Locals(TagUserID, "user-1")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	t.Run(`body and user are logged`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/awards", strings.NewReader(`{"award_type":"Medal"}`))
		_, err := app.Test(req, -1)
		require.NoError(t, err)
		entry := lastEntry(t, buf)
		require.Equal(t, "info", entry["level"])
		require.Equal(t, `{"award_type":"Medal"}`, entry[TagBody])
		require.Equal(t, "user-1", entry[TagUserID])
		require.Equal(t, float64(200), entry[TagStatus])
	})

	t.Run(`login body is skipped`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"secret"}`))
		_, err := app.Test(req, -1)
		require.NoError(t, err)
		entry := lastEntry(t, buf)
		require.Equal(t, "warning", entry["level"])
		require.NotContains(t, entry, TagBody)
	})

	t.Run(`server error`, func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
		require.NoError(t, err)
		require.Equal(t, "error", lastEntry(t, buf)["level"])
	})
}
