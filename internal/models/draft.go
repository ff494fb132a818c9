package models

import (
	"encoding/json"
	"time"
)

// Draft is an autosaved widget in progress, keyed by the editor's
// chosen draft key (usually the article slug).
type Draft struct {
	Key       string          `db:"key" json:"key"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
	ExpiresAt time.Time       `db:"expires_at" json:"expires_at"`
}
