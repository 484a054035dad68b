package login

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/auth"
	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/web/handler"
	"github.com/windseal/windseal-cms/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// form is the login form payload.
type form struct {
	Secret string `form:"secret"`
	Next   string `form:"next"`
}

// Service is the login handler service.
type Service struct {
	cfg  *config.Config
	auth *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, authService *auth.Service) error {
	if app == nil || cfg == nil || authService == nil {
		return errors.New("app, cfg or auth service is nil")
	}

	s.cfg = cfg
	s.auth = authService

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"next": c.Query(handler.NextQueryParam),
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	f := new(form)

	if err := c.BodyParser(f); err != nil {
		return c.Render(TemplateName, fiber.Map{
			"next":  f.Next,
			"error": ErrInvalidFormData.Error(),
		})
	}

	if err := s.auth.Verify(f.Secret); err != nil {
		if !errors.Is(err, auth.ErrSecretMismatch) {
			log.Error().Err(err).Msg("secret verification failed")
		}

		return c.Render(TemplateName, fiber.Map{
			"next":  f.Next,
			"error": auth.ErrSecretMismatch.Error(),
		})
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return c.Render(TemplateName, fiber.Map{
			"next":  f.Next,
			"error": ErrInternalServer.Error(),
		})
	}

	sessData := &session.Data{Authenticated: true}
	if err = sessData.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Render(TemplateName, fiber.Map{
			"next":  f.Next,
			"error": ErrInternalServer.Error(),
		})
	}

	// No MaxAge: the cookie lives for the browser session only, matching
	// the lifetime of the shared admin login.
	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect(sanitizeNext(f.Next))
}

// sanitizeNext keeps redirects inside the back office. Anything else falls
// back to the dashboard.
func sanitizeNext(next string) string {
	if strings.HasPrefix(next, handler.AdminPath) && !strings.HasPrefix(next, "//") {
		return next
	}

	return handler.AdminPath
}
