package handlers

import (
	"edgeapi/services/bookla"
	"edgeapi/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BridgeHandler serves the identity-bridged Bookla endpoints.
type BridgeHandler struct {
	Bookla   *bookla.Client
	Verifier identity.Verifier
	Logger   *zap.Logger
}

func NewBridgeHandler(client *bookla.Client, verifier identity.Verifier, logger *zap.Logger) *BridgeHandler {
	return &BridgeHandler{Bookla: client, Verifier: verifier, Logger: logger}
}

// bearerClaims decodes the request's bearer credential. A missing token or
// a verification failure both yield nil claims.
func (h *BridgeHandler) bearerClaims(c *gin.Context) *identity.Claims {
	token := identity.BearerToken(c.GetHeader("Authorization"))
	if token == "" {
		return nil
	}
	claims, err := h.Verifier.Verify(token)
	if err != nil {
		h.Logger.Warn("token verification failed", zap.Error(err))
		return nil
	}
	return claims
}

func orNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
