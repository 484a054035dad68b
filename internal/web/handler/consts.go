package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout for back office pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// AdminPath is the path prefix of the back office.
	AdminPath = "/admin"

	// NextQueryParam carries the origin a visitor tried to reach before
	// being sent to the login page.
	NextQueryParam = "next"

	// ErrNilACCFatalLogMsg is used if the app, cfg or content var pointer is nil.
	ErrNilACCFatalLogMsg = "app, cfg or content is nil"
)
