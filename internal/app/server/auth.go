package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = fmt.Errorf("unauthorized")

// auth validates the request's bearer token and returns the player id it
// was issued for.
func (s *server) auth(r *http.Request) (string, error) {
	if s.config.AuthSecret == "" {
		return "", fmt.Errorf("%w: auth secret not configured", ErrUnauthorized)
	}
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}

	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.config.AuthSecret), nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}
	playerId, err := claims.GetSubject()
	if err != nil || playerId == "" {
		return "", fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}
	return playerId, nil
}
