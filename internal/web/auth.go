package web

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/windseal/windseal-cms/internal/web/handler"
	"github.com/windseal/windseal-cms/internal/web/handler/login"
	"github.com/windseal/windseal-cms/internal/web/session"
)

// AuthMiddleware guards the back office. Unauthenticated requests to /admin
// paths are redirected to the login page with the origin remembered in the
// next query parameter, so a successful login lands where the visitor was
// headed. Public pages pass through untouched.
func AuthMiddleware(c *fiber.Ctx) error {
	originalURL := c.OriginalURL()
	lowerURL := strings.ToLower(originalURL)

	if strings.HasPrefix(lowerURL, "/static") {
		return c.Next()
	}

	authenticated := IsAuthenticated(c)
	isAdminPage := strings.HasPrefix(lowerURL, handler.AdminPath)

	if isAdminPage && !authenticated {
		// Escape the origin so an admin URL carrying its own query string
		// survives the round trip through the next parameter.
		return c.Redirect(login.Path + "?" + handler.NextQueryParam + "=" + url.QueryEscape(originalURL))
	}

	// an authenticated admin has no business on the login page
	if IsLoginPage(c) && authenticated {
		return c.Redirect(handler.AdminPath)
	}

	return c.Next()
}

// IsAuthenticated reports whether the request carries a valid admin session.
func IsAuthenticated(c *fiber.Ctx) bool {
	sessionID := c.Cookies("session")
	if sessionID == "" {
		return false
	}

	sessData := new(session.Data)
	_ = sessData.Read(sessionID)

	return sessData.Authenticated
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.OriginalURL()), login.Path)
}
