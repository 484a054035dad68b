// Package gallery provides the back office gallery pages.
package gallery

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
	// Path is the path to the gallery pages.
	Path = handler.AdminPath + "/gallery"

	// TemplateName is the name of the gallery template.
	TemplateName = "admin/gallery"
)

// form is the gallery image create payload. Gallery images are added and
// removed, never edited.
type form struct {
	URL     string `form:"url"`
	Caption string `form:"caption"`
}

// Service is the gallery handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the gallery handler.
var Handler = Service{}

// Init initializes the gallery handler.
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
		router.Post("/:id/delete", s.Delete)
	})
}

func (s *Service) render(c *fiber.Ctx, errMsg string) error {
	nav := navigation.NewContext("Gallery", "content", "gallery").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Gallery", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Images":     s.content.Gallery.List(),
		"error":      errMsg,
	}, handler.AdminLayout)
}

// List renders the gallery page, newest image first.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, "")
}

// Create adds a new gallery image at the front of the list.
func (s *Service) Create(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	if f.URL == "" {
		return s.render(c, "image url is required")
	}

	created := s.content.Gallery.Create(content.GalleryImage{
		URL:     f.URL,
		Caption: f.Caption,
	})

	log.Info().Str("id", created.ID).Msg("gallery image added")

	return c.Redirect(Path)
}

// Delete removes a gallery image.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.content.Gallery.Delete(c.Params("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "gallery image not found")
		}

		return err
	}

	return c.Redirect(Path)
}
