package products

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/db/models"
	"github.com/windseal/windseal-cms/internal/store"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

const placeholderImage = "https://picsum.photos/seed/placeholder/600/400"

func setupTestHandler(t *testing.T) (*fiber.App, *content.Content) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.AutoMigrate(&models.Record{}))

	ct := content.Load(store.New(db))

	cfg := &config.Config{
		Webserver: config.Webserver{URL: "http://localhost", Port: 3000},
		Content:   config.Content{PlaceholderImage: placeholderImage},
	}

	app := fiber.New(fiber.Config{Views: noOpViews{}, Immutable: true})

	var s Service
	s.Init(app, cfg, ct)

	return app, ct
}

func performPost(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func lastProduct(t *testing.T, ct *content.Content) content.Product {
	t.Helper()

	items := ct.Products.List()
	require.NotEmpty(t, items)

	return items[len(items)-1]
}

func TestCreateSplitsImageList(t *testing.T) {
	app, ct := setupTestHandler(t)

	resp := performPost(t, app, Path+"/", url.Values{
		"category_id": {"1"},
		"name":        {"Test Handle"},
		"description": {"desc"},
		"images":      {"https://a.example/1.jpg\nhttps://a.example/2.jpg, https://a.example/3.jpg"},
	})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	created := lastProduct(t, ct)
	assert.Equal(t, "Test Handle", created.Name)
	assert.Equal(t, []string{
		"https://a.example/1.jpg",
		"https://a.example/2.jpg",
		"https://a.example/3.jpg",
	}, created.Images)
}

func TestCreateWithoutImagesUsesPlaceholder(t *testing.T) {
	app, ct := setupTestHandler(t)

	resp := performPost(t, app, Path+"/", url.Values{
		"category_id": {"1"},
		"name":        {"Bare Product"},
	})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	created := lastProduct(t, ct)
	assert.Equal(t, []string{placeholderImage}, created.Images)
}

func TestUpdateWithEmptyImagesKeepsStoredList(t *testing.T) {
	app, ct := setupTestHandler(t)

	existing := ct.Products.List()[0]
	require.NotEmpty(t, existing.Images)

	resp := performPost(t, app, Path+"/"+existing.ID, url.Values{
		"category_id": {existing.CategoryID},
		"name":        {"Renamed"},
		"description": {existing.Description},
		"images":      {""},
	})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	updated, err := ct.Products.Get(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, existing.Images, updated.Images, "empty images field wiped the stored list")
}

func TestDeleteRemovesProduct(t *testing.T) {
	app, ct := setupTestHandler(t)

	existing := ct.Products.List()[0]

	resp := performPost(t, app, Path+"/"+existing.ID+"/delete", url.Values{})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, err := ct.Products.Get(existing.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
}
