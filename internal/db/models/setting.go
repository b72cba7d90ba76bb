package models

import "time"

// Setting is one string key/value record. Credentials, the endpoint
// configuration and the cached access token all live in this table under
// fixed keys, one row each.
type Setting struct {
	Key       string `gorm:"primaryKey"` // Setting key name
	Value     string // Setting value, serialized as text
	CreatedAt time.Time
	UpdatedAt time.Time
}
