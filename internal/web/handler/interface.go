package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
)

// Service is the interface for a content-backed web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, ct *content.Content)
}
