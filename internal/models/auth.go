package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload stored in the editor session
// cookie. The tool has a single shared editor password, so the claims
// carry no identity beyond the subject marker.
type SessionClaims struct {
	jwt.RegisteredClaims
}
