package auth

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AssertionClaims name the parties to a service-account style JWT assertion.
type AssertionClaims struct {
	// Issuer identifies the account making the assertion.
	Issuer string

	// Scope is the space-delimited set of permissions requested.
	Scope string

	// Audience is the token endpoint the assertion is intended for.
	Audience string
}

// MakeAssertion renders an RS256-signed JWT assertion for the claims,
// issued at now and expiring an hour later.
func MakeAssertion(key *rsa.PrivateKey, claims AssertionClaims, now time.Time) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: key cannot be nil", ErrNotValid)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   claims.Issuer,
		"scope": claims.Scope,
		"aud":   claims.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnexpected, err)
	}

	return signed, nil
}

// LoadRSAKey parses a PEM-encoded RSA private key,
// like those issued alongside service-account credentials.
func LoadRSAKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return key, nil
}
