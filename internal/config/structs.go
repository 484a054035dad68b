package config

import (
	"fmt"
	"time"

	"github.com/windseal/windseal-cms/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Content   Content
}

// DB implements the sqlite database settings.
type DB struct {
	Path   string // path to the sqlite database file
	Extras string // extra DSN parameters, e.g. "_pragma=busy_timeout(5000)"
}

// Content implements content store settings.
type Content struct {
	DefaultAdminSecret string // secret seeded for the back office on first boot
	PlaceholderImage   string // image used for products created without any image URL
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool    // use clean path middleware to allow multi slash requests
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// ListenAddr returns the address the webserver listens on.
func (w Webserver) ListenAddr() string {
	return fmt.Sprintf(":%d", w.Port)
}
