// Package dashboard provides the back office overview page.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/web/handler"
	"github.com/windseal/windseal-cms/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"
)

// Counts summarizes the content collections for the overview cards.
type Counts struct {
	Categories   int
	Products     int
	Catalogs     int
	Testimonials int
	Gallery      int
	Strengths    int
}

// Service is the dashboard handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ct *content.Content) {
	if app == nil || cfg == nil || ct == nil {
		log.Fatal().Msg(handler.ErrNilACCFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.content = ct

	app.Get(Path, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard", "dashboard").
		AddBreadcrumb("Admin", Path, false).
		AddBreadcrumb("Dashboard", Path, true)

	counts := Counts{
		Categories:   s.content.Categories.Len(),
		Products:     s.content.Products.Len(),
		Catalogs:     s.content.Catalogs.Len(),
		Testimonials: s.content.Testimonials.Len(),
		Gallery:      s.content.Gallery.Len(),
		Strengths:    len(s.content.Settings.Get().Strengths),
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Counts":     counts,
	}, handler.AdminLayout)
}
