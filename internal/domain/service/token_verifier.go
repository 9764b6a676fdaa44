package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the admin claims carried by a bearer token.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// AdminID is the subject of the token.
func (c *Claims) AdminID() string {
	return c.Subject
}

// TokenVerifier validates bearer tokens issued by the admin identity service.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*Claims, error)
}
