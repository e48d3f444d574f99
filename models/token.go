// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT that authorises writes to the config server.
//
// SignedString holds the compact serialized form (header.payload.signature)
// sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

// Writer returns the "sub" claim: the name of whoever the token was issued
// to. It is only used for logging.
func (t *Token) Writer() string {
	sub, _ := t.GetSubject()
	return sub
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
