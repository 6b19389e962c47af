package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every bearer token issued by the service.
//
// UserID and Username identify the caller; the embedded registered claims
// carry the issuer, subject, issue time and expiry time.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token is the decoded form of a bearer credential.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID and Username are copied out of the claims.
	UserID   int64  `json:"-"`
	Username string `json:"-"`

	// IssuedAt and ExpiresAt bound the validity window of the token.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
