// Package settings provides the back office site settings pages. Banner and
// strength edits are staged on a draft and only published when the admin
// saves; the page also hosts the admin secret rotation form.
package settings

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/auth"
	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/web/handler"
	"github.com/windseal/windseal-cms/internal/web/navigation"
)

const (
	// Path is the path to the site settings pages.
	Path = handler.AdminPath + "/settings"

	// TemplateName is the name of the settings template.
	TemplateName = "admin/settings"
)

// scalarForm carries every single-valued settings field.
type scalarForm struct {
	WhatsApp        string `form:"whatsapp"`
	Email           string `form:"email" validate:"omitempty,email"`
	Facebook        string `form:"facebook" validate:"omitempty,url"`
	HeadOfficePhone string `form:"head_office_phone"`
	BranchOnePhone  string `form:"branch_one_phone"`
	BranchTwoPhone  string `form:"branch_two_phone"`
	AdminPhone      string `form:"admin_phone"`

	AboutText           string `form:"about_text"`
	AboutImage          string `form:"about_image"`
	AboutTextSecondary  string `form:"about_text_secondary"`
	AboutImageSecondary string `form:"about_image_secondary"`
	StrengthImage       string `form:"strength_image"`
	ContactImage        string `form:"contact_image"`

	HeaderLogo    string `form:"header_logo"`
	FooterLogo    string `form:"footer_logo"`
	PoweredByLogo string `form:"powered_by_logo"`
}

// bannerForm is the add-banner payload.
type bannerForm struct {
	URL string `form:"url"`
}

// strengthForm is the add-strength payload.
type strengthForm struct {
	IconName string `form:"icon_name"`
	Text     string `form:"text"`
}

// secretForm is the admin secret rotation payload.
type secretForm struct {
	Current string `form:"current_secret"`
	Next    string `form:"new_secret"`
	Confirm string `form:"confirm_secret"`
}

// Service is the settings handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
	auth    *auth.Service
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ct *content.Content, authService *auth.Service) {
	if app == nil || cfg == nil || ct == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilACCFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.content = ct
	s.auth = authService

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Save)
		router.Post("/discard", s.Discard)
		router.Post("/banners", s.AddBanner)
		router.Post("/banners/:index/delete", s.RemoveBanner)
		router.Post("/strengths", s.AddStrength)
		router.Post("/strengths/:id/delete", s.RemoveStrength)
		router.Post("/secret", s.ChangeSecret)
	})
}

func (s *Service) render(c *fiber.Ctx, errMsg, notice string) error {
	nav := navigation.NewContext("Site Settings", "settings", "settings").
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Site Settings", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Sidebar":    navigation.Sidebar(),
		"Draft":      s.content.Editor.Draft(),
		"IconNames":  content.IconNames(),
		"error":      errMsg,
		"notice":     notice,
	}, handler.AdminLayout)
}

// Get renders the settings page with the current draft.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, "", "")
}

// Save applies the scalar fields to the draft and publishes the whole draft
// including any staged banner and strength changes.
func (s *Service) Save(c *fiber.Ctx) error {
	f := new(scalarForm)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data", "")
	}

	if errs := validateForm(f); len(errs) > 0 {
		return s.render(c, validationMessage(errs), "")
	}

	s.content.Editor.SetScalars(func(v *content.SiteSettings) {
		v.WhatsApp = f.WhatsApp
		v.Email = f.Email
		v.Facebook = f.Facebook
		v.HeadOfficePhone = f.HeadOfficePhone
		v.BranchOnePhone = f.BranchOnePhone
		v.BranchTwoPhone = f.BranchTwoPhone
		v.AdminPhone = f.AdminPhone
		v.AboutText = f.AboutText
		v.AboutImage = f.AboutImage
		v.AboutTextSecondary = f.AboutTextSecondary
		v.AboutImageSecondary = f.AboutImageSecondary
		v.StrengthImage = f.StrengthImage
		v.ContactImage = f.ContactImage
		v.HeaderLogo = f.HeaderLogo
		v.FooterLogo = f.FooterLogo
		v.PoweredByLogo = f.PoweredByLogo
	})

	s.content.Editor.Commit()

	log.Info().Msg("site settings published")

	return s.render(c, "", "settings saved")
}

// Discard drops all staged edits.
func (s *Service) Discard(c *fiber.Ctx) error {
	s.content.Editor.Discard()

	return c.Redirect(Path)
}

// AddBanner stages a new hero banner on the draft.
func (s *Service) AddBanner(c *fiber.Ctx) error {
	f := new(bannerForm)
	if err := c.BodyParser(f); err != nil || f.URL == "" {
		return s.render(c, "banner url is required", "")
	}

	s.content.Editor.AddBanner(f.URL)

	return c.Redirect(Path)
}

// RemoveBanner stages the removal of a hero banner.
func (s *Service) RemoveBanner(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return s.render(c, "invalid banner index", "")
	}

	if err := s.content.Editor.RemoveBanner(index); err != nil {
		return s.render(c, err.Error(), "")
	}

	return c.Redirect(Path)
}

// AddStrength stages a new strength item on the draft.
func (s *Service) AddStrength(c *fiber.Ctx) error {
	f := new(strengthForm)
	if err := c.BodyParser(f); err != nil || f.Text == "" {
		return s.render(c, "strength text is required", "")
	}

	s.content.Editor.AddStrength(f.IconName, f.Text)

	return c.Redirect(Path)
}

// RemoveStrength stages the removal of a strength item.
func (s *Service) RemoveStrength(c *fiber.Ctx) error {
	if err := s.content.Editor.RemoveStrength(c.Params("id")); err != nil {
		return s.render(c, "strength item not found", "")
	}

	return c.Redirect(Path)
}

// ChangeSecret rotates the admin secret. Validation failures re-render the
// page with the reason; the stored secret is untouched until all checks pass.
func (s *Service) ChangeSecret(c *fiber.Ctx) error {
	f := new(secretForm)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, "invalid form data", "")
	}

	err := s.auth.ChangeSecret(f.Current, f.Next, f.Confirm)

	switch {
	case errors.Is(err, auth.ErrCurrentMismatch),
		errors.Is(err, auth.ErrConfirmationMismatch),
		errors.Is(err, auth.ErrSecretTooShort):
		return s.render(c, err.Error(), "")
	case err != nil:
		log.Error().Err(err).Msg("failed to change admin secret")

		return s.render(c, "internal server error", "")
	}

	log.Info().Msg("admin secret rotated")

	return s.render(c, "", "admin secret changed")
}
