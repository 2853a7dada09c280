package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// HMACVerifier verifies HS256-signed tokens with a shared secret before
// releasing their claims. Selected when IDENTITY_JWT_SECRET is configured.
type HMACVerifier struct {
	Secret []byte
}

func (v HMACVerifier) Verify(token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claimsFrom(mapClaims), nil
}
