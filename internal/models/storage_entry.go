package models

import "time"

// StorageEntry is one key of the shop's local storage when it lives in
// a SQL database.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
