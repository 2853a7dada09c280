package identity

import (
	"github.com/golang-jwt/jwt/v4"
)

// Decoder decodes the payload segment of a JWT without verifying its
// signature. Any malformed input (wrong segment count, bad base64, bad
// JSON) yields empty claims rather than an error: downstream callers treat
// a missing subject or email as an auth failure either way.
type Decoder struct{}

func (Decoder) Verify(token string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return &Claims{Raw: map[string]any{}}, nil
	}
	return claimsFrom(mapClaims), nil
}

func claimsFrom(mapClaims jwt.MapClaims) *Claims {
	c := &Claims{Raw: map[string]any(mapClaims)}
	if sub, ok := mapClaims["sub"].(string); ok {
		c.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		c.Email = email
	}
	return c
}
