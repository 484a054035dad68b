// Package site provides the public marketing pages. Everything rendered
// here comes from the in-memory content collections; no request touches
// the database.
package site

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/web/handler"
)

// Template names for the public pages.
const (
	HomeTemplate     = "site/home"
	AboutTemplate    = "site/about"
	ProductsTemplate = "site/products"
	ProductTemplate  = "site/product"
	GalleryTemplate  = "site/gallery"
	CatalogsTemplate = "site/catalogs"
	ContactTemplate  = "site/contact"
)

// Service is the public site handler service.
type Service struct {
	cfg     *config.Config
	content *content.Content
}

// Handler is the public site handler.
var Handler = Service{}

// Init initializes the public site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ct *content.Content) {
	if app == nil || cfg == nil || ct == nil {
		log.Fatal().Msg(handler.ErrNilACCFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.content = ct

	app.Get("/", s.Home)
	app.Get("/about", s.About)
	app.Get("/products", s.Products)
	app.Get("/products/:id", s.Product)
	app.Get("/gallery", s.Gallery)
	app.Get("/catalogs", s.Catalogs)
	app.Get("/contact", s.Contact)
}

// base returns the template data every public page needs.
func (s *Service) base(title string) fiber.Map {
	return fiber.Map{
		"Title":    title,
		"Settings": s.content.Settings.Get(),
	}
}

// Home renders the landing page.
func (s *Service) Home(c *fiber.Ctx) error {
	data := s.base("Home")
	data["Categories"] = s.content.Categories.List()
	data["Testimonials"] = s.content.Testimonials.List()
	data["Catalogs"] = s.content.Catalogs.List()

	// newest first, capped for the homepage strip
	images := s.content.Gallery.List()
	if len(images) > 6 {
		images = images[:6]
	}
	data["GalleryPreview"] = images

	return c.Render(HomeTemplate, data, handler.BaseLayout)
}

// About renders the about page with the strengths list.
func (s *Service) About(c *fiber.Ctx) error {
	return c.Render(AboutTemplate, s.base("About Us"), handler.BaseLayout)
}

// Products renders the product listing, optionally filtered by category.
func (s *Service) Products(c *fiber.Ctx) error {
	data := s.base("Products")
	data["Categories"] = s.content.Categories.List()
	data["ActiveCategory"] = ""

	products := s.content.Products.List()

	if categoryID := c.Query("category"); categoryID != "" {
		filtered := make([]content.Product, 0, len(products))

		for _, p := range products {
			if p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}

		products = filtered
		data["ActiveCategory"] = categoryID
	}

	data["Products"] = products

	return c.Render(ProductsTemplate, data, handler.BaseLayout)
}

// Product renders a single product page.
func (s *Service) Product(c *fiber.Ctx) error {
	product, err := s.content.Products.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render(ProductsTemplate, s.base("Product Not Found"), handler.BaseLayout)
		}

		return err
	}

	data := s.base(product.Name)
	data["Product"] = product

	if category, err := s.content.Categories.Get(product.CategoryID); err == nil {
		data["Category"] = category
	}

	return c.Render(ProductTemplate, data, handler.BaseLayout)
}

// Gallery renders the full gallery, newest first.
func (s *Service) Gallery(c *fiber.Ctx) error {
	data := s.base("Gallery")
	data["Images"] = s.content.Gallery.List()

	return c.Render(GalleryTemplate, data, handler.BaseLayout)
}

// Catalogs renders the downloadable catalog list.
func (s *Service) Catalogs(c *fiber.Ctx) error {
	data := s.base("Catalogs")
	data["Catalogs"] = s.content.Catalogs.List()

	return c.Render(CatalogsTemplate, data, handler.BaseLayout)
}

// Contact renders the contact page.
func (s *Service) Contact(c *fiber.Ctx) error {
	return c.Render(ContactTemplate, s.base("Contact Us"), handler.BaseLayout)
}
