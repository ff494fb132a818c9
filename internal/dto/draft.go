package dto

import (
	"encoding/json"
	"time"
)

// SaveDraftRequest stores the builder state blob as-is; the server
// never interprets it beyond being valid JSON.
type SaveDraftRequest struct {
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// DraftResponse returns a stored draft with its expiry.
type DraftResponse struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}
