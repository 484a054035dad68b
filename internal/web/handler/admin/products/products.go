// Package products provides the back office product pages.
package products

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
	// Path is the path to the product pages.
	Path = handler.AdminPath + "/products"

	// TemplateName is the name of the product list template.
	TemplateName = "admin/products"
)

// form is the product create and edit payload. Images is a freeform
// multi-value field, one URL per line or comma-separated.
type form struct {
	CategoryID  string `form:"category_id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Images      string `form:"images"`
}

// Service is the products handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the products handler.
var Handler = Service{}

// Init initializes the products handler.
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
	nav := navigation.NewContext("Products", "catalog", "products").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Products", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Products":   s.content.Products.List(),
		"Categories": s.content.Categories.List(),
		"error":      errMsg,
	}, handler.AdminLayout)
}

// List renders the product list page.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, "")
}

// Create adds a new product. A product submitted without images gets the
// configured placeholder so the public site always has something to show.
func (s *Service) Create(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	images := content.SplitList(f.Images)
	if len(images) == 0 {
		images = []string{s.cfg.Content.PlaceholderImage}
	}

	created := s.content.Products.Create(content.Product{
		CategoryID:  f.CategoryID,
		Name:        f.Name,
		Description: f.Description,
		Images:      images,
	})

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("product created")

	return c.Redirect(Path)
}

// Update replaces an existing product in place. An empty images field keeps
// the stored image list, so an edit cannot accidentally wipe photos.
func (s *Service) Update(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	_, err := s.content.Products.Update(content.Product{
		ID:          c.Params("id"),
		CategoryID:  f.CategoryID,
		Name:        f.Name,
		Description: f.Description,
		Images:      content.SplitList(f.Images),
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "product not found")
		}

		return err
	}

	return c.Redirect(Path)
}

// Delete removes a product.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.content.Products.Delete(c.Params("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "product not found")
		}

		return err
	}

	return c.Redirect(Path)
}
