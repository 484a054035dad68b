// Package models contains database model definitions.
package models

// Record is one named content snapshot stored in the database.
// Each content collection (categories, products, catalogs, settings,
// testimonials, gallery) persists as a single JSON blob under its key.
type Record struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:100;not null"`
	Value []byte `gorm:"type:blob"`
}
