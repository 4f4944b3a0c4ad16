package tokens

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
)

const (
	issuer = "jobly"

	// KeyID is the "kid" header of every issued token.
	KeyID = "jobly-auth-key-1"
)

// Claims is the signed token body. Claim carries the UserContext fields.
type Claims struct {
	Claim map[string]interface{} `json:"claim"`
	jwt.RegisteredClaims
}

// CreateToken creates an ES256 signed JWT for user.
func CreateToken(privateKeyPEM string, user types.UserContext, ttl time.Duration) (string, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("unable to parse private key: %w", err)
	}

	now := time.Now()
	claims := Claims{
		Claim: map[string]interface{}{
			"username": user.Username,
			"role":     user.SystemRole,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = KeyID

	return token.SignedString(privateKey)
}

// ParsePublicKey parses a PEM encoded EC public key.
func ParsePublicKey(publicKeyPEM string) (*ecdsa.PublicKey, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse EC public key: %w", err)
	}
	return key, nil
}

// Verify checks the signature and expiry of tokenString and returns the user it carries.
func Verify(tokenString string, publicKey *ecdsa.PublicKey) (types.UserContext, error) {
	var userCtx types.UserContext

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodES256.Name}), jwt.WithIssuer(issuer))
	if err != nil {
		return userCtx, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return userCtx, errors.New("invalid token")
	}

	username, _ := claims.Claim["username"].(string)
	if username == "" {
		return userCtx, errors.New("missing username in claim")
	}
	role, _ := claims.Claim["role"].(string)
	if role != types.AdminRole && role != types.UserRole {
		return userCtx, fmt.Errorf("unknown role %q in claim", role)
	}

	userCtx.Username = username
	userCtx.SystemRole = role
	return userCtx, nil
}

// Issuer mints tokens with a fixed key and lifetime.
type Issuer struct {
	privateKey string
	ttl        time.Duration
}

// NewIssuer creates an Issuer. The key is parsed on each Issue call.
func NewIssuer(privateKeyPEM string, ttl time.Duration) *Issuer {
	return &Issuer{privateKey: privateKeyPEM, ttl: ttl}
}

// Issue creates a token for user.
func (i *Issuer) Issue(user types.UserContext) (string, error) {
	return CreateToken(i.privateKey, user, i.ttl)
}
