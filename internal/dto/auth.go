package dto

// LoginRequest carries the shared editor password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionStatus reports whether the current cookie holds a valid
// session.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
