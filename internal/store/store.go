// Package store persists named content snapshots as JSON blobs.
//
// Every collection the site edits lives under one fixed key. Reads happen
// once at startup (hydrate), writes happen on every content commit
// (write-through persist). A missing or unreadable snapshot is never an
// error for the caller: hydration falls back to the seed value.
package store

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/db/controller/record"
)

// Storage keys, one per collection. The admin secret is not stored here,
// it has its own table (see internal/auth).
const (
	KeyCategories   = "categories"
	KeyProducts     = "products"
	KeyCatalogs     = "catalogs"
	KeySettings     = "settings"
	KeyTestimonials = "testimonials"
	KeyGallery      = "gallery"
)

// schemaVersion tags persisted payloads so a future shape change can migrate
// instead of silently misparsing.
const schemaVersion = 1

// envelope wraps every persisted payload with its schema version.
type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Store reads and writes named snapshots against the record table.
type Store struct {
	db *gorm.DB
}

// New creates a store handle on the given database.
func New(db *gorm.DB) *Store {
	if db == nil {
		panic("store: db cannot be nil")
	}

	return &Store{db: db}
}

// Hydrate reads and decodes the snapshot stored under key. Absent, corrupt
// or incompatible data all yield the seed value; nothing surfaces to the
// caller beyond a debug log.
func Hydrate[T any](s *Store, key string, seed T) T {
	rec, err := record.Get(s.db, key)
	if err != nil {
		if !errors.Is(err, record.ErrRecordNotFound) {
			log.Debug().Err(err).Str("key", key).Msg("hydrate falling back to seed")
		}

		return seed
	}

	var env envelope
	if err := json.Unmarshal(rec.Value, &env); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("stored snapshot unreadable, using seed")
		return seed
	}

	if env.Version != schemaVersion || env.Data == nil {
		log.Debug().Int("version", env.Version).Str("key", key).Msg("stored snapshot incompatible, using seed")
		return seed
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("stored snapshot undecodable, using seed")
		return seed
	}

	return out
}

// Persist encodes value and replaces the snapshot stored under key wholesale.
func Persist[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return err
	}

	if _, err := record.Set(s.db, key, payload); err != nil {
		return err
	}

	return nil
}
