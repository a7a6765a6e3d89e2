package models

import "time"

// KVEntry is one row of the key-value table used by the PostgreSQL backend.
// Every storage key (the complaint collection, the theme preference) is a row.
type KVEntry struct {
	// Key is the storage key, e.g. "campusComplaints".
	Key string `gorm:"primaryKey;type:text"`
	// Value is the serialized payload stored under Key.
	Value string `gorm:"type:text;not null"`
	// UpdatedAt is maintained by GORM on every upsert.
	UpdatedAt time.Time
}

// TableName pins the table name so it does not depend on GORM's pluralizer.
func (KVEntry) TableName() string { return "kv_entries" }
