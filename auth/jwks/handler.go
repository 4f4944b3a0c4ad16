package jwks

import (
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"
	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/auth/tokens"
)

type Handler struct {
	jwks JWKS
	err  error
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kty string `json:"kty"` // Key Type
	Use string `json:"use"` // Public Key Use
	Kid string `json:"kid"` // Key ID
	Alg string `json:"alg"` // Algorithm
	Crv string `json:"crv"` // Curve (for EC keys)
	X   string `json:"x"`   // X coordinate
	Y   string `json:"y"`   // Y coordinate
}

// NewHandler converts the token verification key once. A bad key is reported
// by Handle rather than here.
func NewHandler(publicKey, keyID string) *Handler {
	key, err := tokens.ParsePublicKey(publicKey)
	if err != nil {
		return &Handler{err: fmt.Errorf("failed to parse public key: %w", err)}
	}

	size := (key.Curve.Params().BitSize + 7) / 8
	return &Handler{jwks: JWKS{Keys: []JWK{{
		Kty: "EC",
		Use: "sig",
		Kid: keyID,
		Alg: "ES256",
		Crv: key.Curve.Params().Name,
		X:   base64.RawURLEncoding.EncodeToString(key.X.FillBytes(make([]byte, size))),
		Y:   base64.RawURLEncoding.EncodeToString(key.Y.FillBytes(make([]byte, size))),
	}}}}
}

// Handle returns the JWKS for JWT validation
func (h *Handler) Handle(c *fiber.Ctx) error {
	if h.err != nil {
		return authErrors.HandleServiceError(c, h.err)
	}
	return c.JSON(h.jwks)
}
