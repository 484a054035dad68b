package login

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionmemory "github.com/gofiber/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/auth"
	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/db/models"
	websess "github.com/windseal/windseal-cms/internal/web/session"
)

// noOpViews is a minimal Fiber Views engine used for tests.
// It writes the "error" field from the provided fiber.Map (if any)
// so tests can assert error messages rendered by handlers.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["error"]; exists && v != nil {
			if msg, ok := v.(string); ok && msg != "" {
				_, _ = io.WriteString(w, msg)
				return nil
			}
		}
	}
	// write template name to have some content
	_, _ = io.WriteString(w, name)

	return nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{Views: noOpViews{}, Immutable: true})
}

func newTestAuth(t *testing.T) *auth.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.AdminCredential{}))

	svc, err := auth.NewService(db, "changeme")
	require.NoError(t, err)

	return svc
}

func newTestConfig() *config.Config {
	return &config.Config{
		DevMode: false,
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
}

func performPost(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func initTestHandler(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	app := newTestApp()
	websess.Init(sessionmemory.New())

	var s Service
	require.NoError(t, s.Init(app, cfg, newTestAuth(t)))

	return app
}

func TestGet_RendersLoginPage(t *testing.T) {
	app := initTestHandler(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, Path+"/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPost_CorrectSecret_SetsSessionCookieAndRedirects(t *testing.T) {
	app := initTestHandler(t, newTestConfig())

	resp := performPost(t, app, Path+"/", url.Values{"secret": {"changeme"}})

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	setCookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, setCookie, "session=")

	// Session-scoped cookie: no Max-Age or Expires, it dies with the browser.
	assert.NotContains(t, strings.ToLower(setCookie), "max-age")
	assert.NotContains(t, strings.ToLower(setCookie), "expires")

	assert.Contains(t, strings.ToLower(setCookie), "secure")
}

func TestPost_RedirectsToRememberedOrigin(t *testing.T) {
	app := initTestHandler(t, newTestConfig())

	resp := performPost(t, app, Path+"/", url.Values{
		"secret": {"changeme"},
		"next":   {"/admin/products"},
	})

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/products", resp.Header.Get("Location"))
}

func TestPost_RejectsOffSiteNext(t *testing.T) {
	app := initTestHandler(t, newTestConfig())

	testCases := []struct {
		name string
		next string
	}{
		{name: "absolute url", next: "https://evil.example/phish"},
		{name: "protocol relative", next: "//evil.example/phish"},
		{name: "outside back office", next: "/products"},
		{name: "empty", next: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := performPost(t, app, Path+"/", url.Values{
				"secret": {"changeme"},
				"next":   {tc.next},
			})

			defer func() {
				_ = resp.Body.Close()
			}()

			require.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/admin", resp.Header.Get("Location"))
		})
	}
}

func TestPost_WrongSecret_RendersError(t *testing.T) {
	app := initTestHandler(t, newTestConfig())

	resp := performPost(t, app, Path+"/", url.Values{"secret": {"wrong"}})

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(bodyBytes), auth.ErrSecretMismatch.Error())
	assert.Empty(t, resp.Header.Get("Set-Cookie"), "no session cookie on failed login")
}

func TestPost_DevModeDisablesSecure(t *testing.T) {
	cfg := newTestConfig()
	cfg.DevMode = true

	app := initTestHandler(t, cfg)

	resp := performPost(t, app, Path+"/", url.Values{"secret": {"changeme"}})

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)

	setCookie := resp.Header.Get("Set-Cookie")
	assert.NotContains(t, strings.ToLower(setCookie), "secure")
}

func TestSanitizeNext(t *testing.T) {
	assert.Equal(t, "/admin/gallery", sanitizeNext("/admin/gallery"))
	assert.Equal(t, "/admin", sanitizeNext(""))
	assert.Equal(t, "/admin", sanitizeNext("/products"))
	assert.Equal(t, "/admin", sanitizeNext("https://evil.example"))
	assert.Equal(t, "/admin", sanitizeNext("//evil.example"))
}
