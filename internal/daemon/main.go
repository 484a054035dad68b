// Package daemon assembles the application: database, content collections,
// session store and the web service.
package daemon

import (
	"github.com/glebarez/sqlite"
	sessionmemory "github.com/gofiber/storage/memory"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/auth"
	"github.com/windseal/windseal-cms/internal/config"
	"github.com/windseal/windseal-cms/internal/content"
	"github.com/windseal/windseal-cms/internal/db/dsn"
	"github.com/windseal/windseal-cms/internal/db/models"
	"github.com/windseal/windseal-cms/internal/store"
	"github.com/windseal/windseal-cms/internal/web"
	"github.com/windseal/windseal-cms/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.cfg.Webserver.ListenAddr())
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dsn.Create(cfg)), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open database")
	}

	if err = db.AutoMigrate(
		&models.Record{},
		&models.AdminCredential{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	authService, err := auth.NewService(db, cfg.Content.DefaultAdminSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init auth service")
	}

	// hydrate once; all reads are served from memory afterwards
	ct := content.Load(store.New(db))

	// In-memory sessions: an admin login never outlives the process, which
	// matches the browser-session scope of the login cookie.
	session.Init(sessionmemory.New())

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, ct, authService),
	}
}
