// Package navigation provides navigation state, breadcrumbs and the back
// office sidebar definition.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// SidebarItem is one entry in the back office sidebar.
type SidebarItem struct {
	Title   string
	URL     string
	Section string
	Page    string
}

// SidebarGroup is a titled group of sidebar entries.
type SidebarGroup struct {
	Title string
	Items []SidebarItem
}

// Sidebar returns the back office sidebar in display order.
func Sidebar() []SidebarGroup {
	return []SidebarGroup{
		{
			Title: "Overview",
			Items: []SidebarItem{
				{Title: "Dashboard", URL: "/admin", Section: "dashboard", Page: "dashboard"},
			},
		},
		{
			Title: "Catalog",
			Items: []SidebarItem{
				{Title: "Categories", URL: "/admin/categories", Section: "catalog", Page: "categories"},
				{Title: "Products", URL: "/admin/products", Section: "catalog", Page: "products"},
				{Title: "Catalogs", URL: "/admin/catalogs", Section: "catalog", Page: "catalogs"},
			},
		},
		{
			Title: "Site Content",
			Items: []SidebarItem{
				{Title: "Testimonials", URL: "/admin/testimonials", Section: "content", Page: "testimonials"},
				{Title: "Gallery", URL: "/admin/gallery", Section: "content", Page: "gallery"},
			},
		},
		{
			Title: "Configuration",
			Items: []SidebarItem{
				{Title: "Site Settings", URL: "/admin/settings", Section: "settings", Page: "settings"},
			},
		},
	}
}
