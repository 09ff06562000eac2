package auth

import (
	"context"
	"log"

	"github.com/go-chi/jwtauth/v5"

	"github.com/embedviz/embedviz/config"
)

const JwtAlg = "HS256"

// NewTokenAuth builds the token authority used to verify bearer tokens.
// Requires that EMBEDVIZ_AUTH_SECRET is set in the environment.
func NewTokenAuth(cfg *config.Config) *jwtauth.JWTAuth {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		log.Fatal("Auth secret not set. Ensure EMBEDVIZ_AUTH_SECRET is set in your environment.")
	}

	return jwtauth.New(JwtAlg, secret, nil)
}

// GenerateJWT generates a JWT token using the given config.
func GenerateJWT(cfg *config.Config) string {
	tokenAuth := NewTokenAuth(cfg)
	_, tokenString, err := tokenAuth.Encode(nil)
	if err != nil {
		log.Fatal("Error generating auth token: ", err)
	}

	return tokenString
}

// SubjectFromContext returns the subject claim of the verified token in the
// request context, or "" if there is none.
func SubjectFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
