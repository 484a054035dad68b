// Package categories provides the back office category pages.
package categories

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
	// Path is the path to the category pages.
	Path = handler.AdminPath + "/categories"

	// TemplateName is the name of the category list template.
	TemplateName = "admin/categories"
)

// form is the category create and edit payload.
type form struct {
	Name        string `form:"name"`
	Image       string `form:"image"`
	Description string `form:"description"`
}

// Service is the categories handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the categories handler.
var Handler = Service{}

// Init initializes the categories handler.
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
	nav := navigation.NewContext("Categories", "catalog", "categories").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Categories", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Categories": s.content.Categories.List(),
		"error":      errMsg,
	}, handler.AdminLayout)
}

// List renders the category list page.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, "")
}

// Create adds a new category.
func (s *Service) Create(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	created := s.content.Categories.Create(content.Category{
		Name:        f.Name,
		Image:       f.Image,
		Description: f.Description,
	})

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("category created")

	return c.Redirect(Path)
}

// Update replaces an existing category in place.
func (s *Service) Update(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	_, err := s.content.Categories.Update(content.Category{
		ID:          c.Params("id"),
		Name:        f.Name,
		Image:       f.Image,
		Description: f.Description,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "category not found")
		}

		return err
	}

	return c.Redirect(Path)
}

// Delete removes a category. Products keep their category reference; the
// public site simply stops listing the category.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.content.Categories.Delete(c.Params("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "category not found")
		}

		return err
	}

	return c.Redirect(Path)
}
