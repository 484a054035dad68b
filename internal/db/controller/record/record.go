// Package record provides CRUD operations for named content snapshots.
package record

import (
	"errors"

	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")
	// ErrRecordNameEmpty is returned when attempting to access a record with an empty name.
	ErrRecordNameEmpty = errors.New("record name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a record by its name.
func Get(db *gorm.DB, name string) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrRecordNameEmpty
	}

	var rec models.Record
	result := db.Where(nameQueryPattern, name).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	return &rec, nil
}

// GetAll retrieves all records from the database.
func GetAll(db *gorm.DB) ([]models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var recs []models.Record
	result := db.Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}

	return recs, nil
}

// Set creates or updates a record by name (upsert operation).
// Values are always replaced wholesale, never merged.
func Set(db *gorm.DB, name string, value []byte) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrRecordNameEmpty
	}

	var rec models.Record
	result := db.Where(nameQueryPattern, name).First(&rec)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		rec = models.Record{
			Name:  name,
			Value: value,
		}

		if result = db.Create(&rec); result.Error != nil {
			return nil, result.Error
		}

		return &rec, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	rec.Value = value
	result = db.Save(&rec)
	if result.Error != nil {
		return nil, result.Error
	}

	return &rec, nil
}

// Delete deletes a record by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrRecordNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
