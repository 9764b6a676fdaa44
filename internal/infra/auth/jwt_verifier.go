// Package auth verifies the bearer tokens of dashboard staff.
package auth

import (
	"strings"

	"vradmin/config"
	"vradmin/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// jwtVerifier checks HS256 tokens issued by the admin identity service.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates the token verifier from the auth configuration.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("auth secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	return &jwtVerifier{
		secret: []byte(cfg.Auth.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// ValidateToken parses tokenString and returns its claims. Tokens without a
// subject are rejected.
func (v *jwtVerifier) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := v.parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.AdminID() == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
