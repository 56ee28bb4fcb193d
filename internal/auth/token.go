// Package auth issues and verifies the signed tokens used to authenticate
// API callers. No session state is kept; everything is in the token.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/errors"
)

// DefaultExpiry is used when a token is generated without a lifetime.
const DefaultExpiry = time.Hour

var signingMethod = jwt.SigningMethodHS256

// Issuer signs and verifies HS256 tokens with a shared secret.
type Issuer struct {
	secret    []byte
	expiresIn time.Duration
}

// NewIssuer refuses an empty secret. A zero expiresIn falls back to DefaultExpiry.
func NewIssuer(secret string, expiresIn time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.NotValidf("empty signing secret")
	}
	if expiresIn <= 0 {
		expiresIn = DefaultExpiry
	}
	return &Issuer{secret: []byte(secret), expiresIn: expiresIn}, nil
}

// Claims is the verified content of a token.
type Claims struct {
	Payload   map[string]any
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the caller identity most tokens carry.
type Principal struct {
	ID    string
	Email string
	Role  string
}

func (c *Claims) Principal() Principal {
	return Principal{
		ID:    claimString(c.Payload["id"]),
		Email: claimString(c.Payload["email"]),
		Role:  claimString(c.Payload["role"]),
	}
}

// GenerateToken signs payload with an expiry of expiresIn, or the issuer's
// default when expiresIn is not positive. The exp and iat keys of payload
// are overwritten.
func (i *Issuer) GenerateToken(payload map[string]any, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = i.expiresIn
	}
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(expiresIn))

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Annotate(err, "signing token")
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry of tokenString and returns the
// payload it was generated with.
func (i *Issuer) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Trace(err)
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.NotValidf("token")
	}

	claims := &Claims{Payload: make(map[string]any, len(mapClaims))}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	for k, v := range mapClaims {
		if k == "exp" || k == "iat" {
			continue
		}
		claims.Payload[k] = v
	}
	return claims, nil
}

func claimString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
