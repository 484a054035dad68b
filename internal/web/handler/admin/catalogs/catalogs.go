// Package catalogs provides the back office catalog pages.
package catalogs

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/web/handler"
	"github.com/windseal/windseal-cms/internal/web/navigation"
)

const (
	// Path is the path to the catalog pages.
	Path = handler.AdminPath + "/catalogs"

	// TemplateName is the name of the catalog list template.
	TemplateName = "admin/catalogs"
)

// form is the catalog create and edit payload. FileURL is an opaque link,
// never fetched or validated.
type form struct {
	Name    string `form:"name"`
	Image   string `form:"image"`
	FileURL string `form:"file_url"`
}

// Service is the catalogs handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the catalogs handler.
var Handler = Service{}

// Init initializes the catalogs handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ct *content.Content) {
	if app == nil || cfg == nil || ct == nil {
		log.Fatal().Msg(handler.ErrNilACCFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.content = ct

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})
}

func (s *Service) render(c *fiber.Ctx, errMsg string) error {
	nav := navigation.NewContext("Catalogs", "catalog", "catalogs").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Catalogs", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Catalogs":   s.content.Catalogs.List(),
		"error":      errMsg,
	}, handler.AdminLayout)
}

// List renders the catalog list page.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, "")
}

// Create adds a new catalog.
func (s *Service) Create(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	created := s.content.Catalogs.Create(content.Catalog{
		Name:    f.Name,
		Image:   f.Image,
		FileURL: f.FileURL,
	})

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("catalog created")

	return c.Redirect(Path)
}

// Update replaces an existing catalog in place.
func (s *Service) Update(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	_, err := s.content.Catalogs.Update(content.Catalog{
		ID:      c.Params("id"),
		Name:    f.Name,
		Image:   f.Image,
		FileURL: f.FileURL,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "catalog not found")
		}

		return err
	}

	return c.Redirect(Path)
}

// Delete removes a catalog.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.content.Catalogs.Delete(c.Params("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "catalog not found")
		}

		return err
	}

	return c.Redirect(Path)
}
