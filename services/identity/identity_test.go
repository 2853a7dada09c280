package identity

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestDecoder_WellFormedToken(t *testing.T) {
	token := unsignedToken(t, map[string]any{
		"sub":   "u1",
		"email": "a@x.com",
		"plan":  "gold",
	})

	claims, err := Decoder{}.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "gold", claims.Raw["plan"])
	assert.True(t, claims.Complete())
}

func TestDecoder_Deterministic(t *testing.T) {
	token := unsignedToken(t, map[string]any{"sub": "u1", "email": "a@x.com"})

	first, err := Decoder{}.Verify(token)
	require.NoError(t, err)
	second, err := Decoder{}.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecoder_MalformedTokensYieldEmptyClaims(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"one segment":       "abc",
		"two segments":      "abc.def",
		"four segments":     "a.b.c.d",
		"payload not json":  "e30." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig",
		"payload bad base64": "e30.!!!.sig",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := Decoder{}.Verify(token)
			require.NoError(t, err)
			assert.Empty(t, claims.Subject)
			assert.Empty(t, claims.Email)
			assert.False(t, claims.Complete())
		})
	}
}

func TestDecoder_MissingClaimsAreEmpty(t *testing.T) {
	token := unsignedToken(t, map[string]any{"sub": "u1"})
	claims, err := Decoder{}.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Empty(t, claims.Email)
	assert.False(t, claims.Complete())
}

func TestHMACVerifier(t *testing.T) {
	secret := []byte("test-secret")
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	v := HMACVerifier{Secret: secret}

	claims, err := v.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)

	_, err = HMACVerifier{Secret: []byte("wrong-secret")}.Verify(signed)
	assert.Error(t, err)

	unsigned := unsignedToken(t, map[string]any{"sub": "u1", "email": "a@x.com"})
	_, err = v.Verify(unsigned)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Empty(t, BearerToken(""))
	assert.Empty(t, BearerToken("Basic abc"))
	assert.Empty(t, BearerToken("bearer abc"))
}
