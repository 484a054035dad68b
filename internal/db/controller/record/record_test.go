package record

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/windseal/windseal-cms/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Record{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedRecords inserts test data into the database.
func seedRecords(t *testing.T, db *gorm.DB, recs []models.Record) {
	t.Helper()
	for _, rec := range recs {
		err := db.Create(&rec).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		recordName    string
		seedData      []models.Record
		expectedError error
		expectedValue []byte
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			recordName:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			recordName:    "",
			expectedError: ErrRecordNameEmpty,
		},
		{
			name:          "record not found",
			dbParam:       db,
			recordName:    "nonexistent",
			expectedError: ErrRecordNotFound,
		},
		{
			name:       "successful get",
			dbParam:    db,
			recordName: "categories",
			seedData: []models.Record{
				{Name: "categories", Value: []byte(`[]`)},
			},
			expectedValue: []byte(`[]`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM records")
			}

			if tc.seedData != nil {
				seedRecords(t, tc.dbParam, tc.seedData)
			}

			rec, err := Get(tc.dbParam, tc.recordName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, rec)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, rec)
				assert.Equal(t, tc.recordName, rec.Name)
				assert.Equal(t, tc.expectedValue, rec.Value)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seedData      []models.Record
		expectedError error
		expectedCount int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:          "empty database",
			dbParam:       db,
			expectedCount: 0,
		},
		{
			name:    "multiple records",
			dbParam: db,
			seedData: []models.Record{
				{Name: "categories", Value: []byte(`[]`)},
				{Name: "products", Value: []byte(`[]`)},
				{Name: "gallery", Value: []byte(`[]`)},
			},
			expectedCount: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM records")
			}

			if tc.seedData != nil {
				seedRecords(t, tc.dbParam, tc.seedData)
			}

			recs, err := GetAll(tc.dbParam)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, recs)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, recs)
				assert.Len(t, recs, tc.expectedCount)
			}
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		recordName    string
		recordValue   []byte
		seedData      []models.Record
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			recordName:    "test",
			recordValue:   []byte("value"),
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			recordName:    "",
			recordValue:   []byte("value"),
			expectedError: ErrRecordNameEmpty,
		},
		{
			name:        "create new record",
			dbParam:     db,
			recordName:  "settings",
			recordValue: []byte(`{"email":"x"}`),
		},
		{
			name:        "update existing record",
			dbParam:     db,
			recordName:  "categories",
			recordValue: []byte(`[{"id":"1"}]`),
			seedData: []models.Record{
				{Name: "categories", Value: []byte(`[]`)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM records")
			}

			if tc.seedData != nil {
				seedRecords(t, tc.dbParam, tc.seedData)
			}

			rec, err := Set(tc.dbParam, tc.recordName, tc.recordValue)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, rec)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, rec)
				assert.Equal(t, tc.recordName, rec.Name)
				assert.Equal(t, tc.recordValue, rec.Value)

				// Verify the record was written to the database
				var dbRec models.Record
				err = tc.dbParam.Where("name = ?", tc.recordName).First(&dbRec).Error
				require.NoError(t, err)
				assert.Equal(t, tc.recordValue, dbRec.Value)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		recordName    string
		seedData      []models.Record
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			recordName:    "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			recordName:    "",
			expectedError: ErrRecordNameEmpty,
		},
		{
			name:          "record not found",
			dbParam:       db,
			recordName:    "nonexistent",
			expectedError: ErrRecordNotFound,
		},
		{
			name:       "successful delete",
			dbParam:    db,
			recordName: "gallery",
			seedData: []models.Record{
				{Name: "gallery", Value: []byte(`[]`)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM records")
			}

			if tc.seedData != nil {
				seedRecords(t, tc.dbParam, tc.seedData)
			}

			err := Delete(tc.dbParam, tc.recordName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				var count int64
				tc.dbParam.Model(&models.Record{}).Where("name = ?", tc.recordName).Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	// Create via Set
	rec, err := Set(db, "testimonials", []byte(`["a"]`))
	require.NoError(t, err)
	require.NotNil(t, rec)

	// Read it back
	got, err := Get(db, "testimonials")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, []byte(`["a"]`), got.Value)

	// Overwrite via Set keeps the same row
	rec2, err := Set(db, "testimonials", []byte(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, rec.ID, rec2.ID)

	got, err = Get(db, "testimonials")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a","b"]`), got.Value)

	// Delete and verify
	require.NoError(t, Delete(db, "testimonials"))

	_, err = Get(db, "testimonials")
	require.ErrorIs(t, err, ErrRecordNotFound)
}
