package identity

import "strings"

// Claims is the identity extracted from an inbound bearer credential.
// A zero Subject or Email means the credential was absent, malformed, or
// simply did not carry the claim; callers treat all three the same way.
type Claims struct {
	Subject string
	Email   string
	Raw     map[string]any
}

// Complete reports whether the claims identify a user well enough to
// exchange for a Bookla session.
func (c *Claims) Complete() bool {
	return c != nil && c.Subject != "" && c.Email != ""
}

// Verifier turns a bearer token into identity claims.
//
// Decoder is the insecure default: it decodes the payload without checking
// the signature. HMACVerifier performs real signature verification and
// should be preferred wherever a shared secret can be provisioned.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// BearerToken extracts the token from an Authorization header value.
// Returns "" when the header is absent or not a Bearer scheme.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
