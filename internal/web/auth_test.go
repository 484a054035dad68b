package web

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
	"github.com/windseal/windseal-cms/internal/web/handler/login"
	"github.com/windseal/windseal-cms/internal/web/session"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

// newGuardedApp builds a minimal app with the session guard, the login
// handler and one protected page.
func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AdminCredential{}))

	authService, err := auth.NewService(db, "changeme")
	require.NoError(t, err)

	session.Init(sessionmemory.New())

	cfg := &config.Config{
		DevMode: true,
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	app := fiber.New(fiber.Config{Views: noOpViews{}, Immutable: true})
	app.Use(AuthMiddleware)

	require.NoError(t, login.Handler.Init(app, cfg, authService))

	app.Get("/admin/products", func(c *fiber.Ctx) error {
		return c.SendString("products page")
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("public home")
	})

	return app
}

func doGet(t *testing.T, app *fiber.App, target, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestGuardRedirectsToLoginWithOrigin(t *testing.T) {
	app := newGuardedApp(t)

	resp := doGet(t, app, "/admin/products", "")

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fadmin%2Fproducts", resp.Header.Get("Location"))
}

func TestGuardKeepsOriginQueryString(t *testing.T) {
	app := newGuardedApp(t)

	resp := doGet(t, app, "/admin/products?category=1&sort=name", "")

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)

	parsed, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)

	// The origin's own query string must come back intact, not truncated
	// at its first ampersand.
	assert.Equal(t, "/admin/products?category=1&sort=name", parsed.Query().Get("next"))
}

func TestLoginRedirectsToOriginWithQueryString(t *testing.T) {
	app := newGuardedApp(t)

	form := url.Values{"secret": {"changeme"}, "next": {"/admin/products?category=1"}}
	req := httptest.NewRequest(http.MethodPost, login.Path+"/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/products?category=1", resp.Header.Get("Location"))
}

func TestGuardLeavesPublicPagesAlone(t *testing.T) {
	app := newGuardedApp(t)

	resp := doGet(t, app, "/", "")

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardFullLoginRoundTrip(t *testing.T) {
	app := newGuardedApp(t)

	// 1. hitting the back office unauthenticated bounces to login
	resp := doGet(t, app, "/admin/products", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location := resp.Header.Get("Location")
	_ = resp.Body.Close()

	parsed, err := url.Parse(location)
	require.NoError(t, err)
	next := parsed.Query().Get("next")
	require.Equal(t, "/admin/products", next)

	// 2. logging in with the remembered origin redirects back there
	form := url.Values{"secret": {"changeme"}, "next": {next}}
	req := httptest.NewRequest(http.MethodPost, login.Path+"/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginResp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = loginResp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, loginResp.StatusCode)
	assert.Equal(t, "/admin/products", loginResp.Header.Get("Location"))

	setCookie := loginResp.Header.Get("Set-Cookie")
	require.Contains(t, setCookie, "session=")
	cookie := strings.Split(setCookie, ";")[0]

	// 3. the session cookie opens the back office
	pageResp := doGet(t, app, "/admin/products", cookie)

	defer func() {
		_ = pageResp.Body.Close()
	}()

	require.Equal(t, http.StatusOK, pageResp.StatusCode)

	body, _ := io.ReadAll(pageResp.Body)
	assert.Equal(t, "products page", string(body))

	// 4. an authenticated admin is bounced off the login page
	loginPage := doGet(t, app, login.Path, cookie)

	defer func() {
		_ = loginPage.Body.Close()
	}()

	require.Equal(t, http.StatusFound, loginPage.StatusCode)
	assert.Equal(t, "/admin", loginPage.Header.Get("Location"))
}

func TestGuardIgnoresGarbageCookie(t *testing.T) {
	app := newGuardedApp(t)

	resp := doGet(t, app, "/admin/products", "session=not-a-real-session")

	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), login.Path)
}
