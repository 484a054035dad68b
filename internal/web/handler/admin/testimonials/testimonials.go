// Package testimonials provides the back office testimonial pages.
package testimonials

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
	// Path is the path to the testimonial pages.
	Path = handler.AdminPath + "/testimonials"

	// TemplateName is the name of the testimonial list template.
	TemplateName = "admin/testimonials"
)

// form is the testimonial create and edit payload.
type form struct {
	Name    string `form:"name"`
	Company string `form:"company"`
	Content string `form:"content"`
	Avatar  string `form:"avatar"`
}

// Service is the testimonials handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the testimonials handler.
var Handler = Service{}

// Init initializes the testimonials handler.
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
	nav := navigation.NewContext("Testimonials", "content", "testimonials").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Testimonials", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation":   nav,
		"Sidebar":      navigation.Sidebar(),
		"Testimonials": s.content.Testimonials.List(),
		"error":        errMsg,
	}, handler.AdminLayout)
}

// List renders the testimonial list page.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, "")
}

// Create adds a new testimonial.
func (s *Service) Create(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	created := s.content.Testimonials.Create(content.Testimonial{
		Name:    f.Name,
		Company: f.Company,
		Content: f.Content,
		Avatar:  f.Avatar,
	})

	log.Info().Str("id", created.ID).Str("name", created.Name).Msg("testimonial created")

	return c.Redirect(Path)
}

// Update replaces an existing testimonial in place.
func (s *Service) Update(c *fiber.Ctx) error {
	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data")
	}

	_, err := s.content.Testimonials.Update(content.Testimonial{
		ID:      c.Params("id"),
		Name:    f.Name,
		Company: f.Company,
		Content: f.Content,
		Avatar:  f.Avatar,
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "testimonial not found")
		}

		return err
	}

	return c.Redirect(Path)
}

// Delete removes a testimonial.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.content.Testimonials.Delete(c.Params("id")); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return s.render(c, "testimonial not found")
		}

		return err
	}

	return c.Redirect(Path)
}
