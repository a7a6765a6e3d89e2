package models_test

import (
	"complaintbox/backend/internal/models"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCategory_ExactMatchOnly verifies that only the four known labels are accepted.
func TestParseCategory_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		label string
		want  models.Category
		ok    bool
	}{
		{"Infrastructure", models.CategoryInfrastructure, true},
		{"  Academics\n", models.CategoryAcademics, true},
		{"Facilities", models.CategoryFacilities, true},
		{"Other", models.CategoryOther, true},
		{"academics", models.CategoryNone, false},
		{"Academics.", models.CategoryNone, false},
		{"", models.CategoryNone, false},
		{"Category: Other", models.CategoryNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := models.ParseCategory(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryNone_IsNotValid(t *testing.T) {
	assert.False(t, models.CategoryNone.Valid(), "an unchosen category must never be persisted")
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range models.Statuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, models.Status("Closed").Valid())
	assert.False(t, models.Status("").Valid())
	assert.False(t, models.Status("in review").Valid())
}

// TestComplaintJSON_FieldNames verifies the stored record shape.
func TestComplaintJSON_FieldNames(t *testing.T) {
	// Arrange
	c := models.Complaint{
		ID:          "C001",
		Category:    models.CategoryFacilities,
		Description: "Wi-Fi is slow",
		Date:        "2024-07-28",
		Status:      models.StatusInReview,
		Anonymous:   true,
	}

	// Act
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	// Assert
	assert.JSONEq(t,
		`{"id":"C001","category":"Facilities","description":"Wi-Fi is slow","date":"2024-07-28","status":"In Review","anonymous":true}`,
		string(raw))
}

// TestKVEntryStructTags guards the GORM tags the PostgreSQL backend relies on.
func TestKVEntryStructTags(t *testing.T) {
	entryType := reflect.TypeOf(models.KVEntry{})

	keyField, found := entryType.FieldByName("Key")
	assert.True(t, found, "Key field should exist")
	assert.Contains(t, keyField.Tag.Get("gorm"), "primaryKey", "Key should be the primary key")

	valueField, found := entryType.FieldByName("Value")
	assert.True(t, found, "Value field should exist")
	assert.Contains(t, valueField.Tag.Get("gorm"), "type:text")

	assert.Equal(t, "kv_entries", models.KVEntry{}.TableName())
}
