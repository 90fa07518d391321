// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued for one remote namespace.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// jwt.ParseWithClaims. The namespace travels in the "sub" claim.
type Token struct {
	// Token is the parsed JWT; nil for tokens that were only signed.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in Authorization headers.
	SignedString string `json:"-"`

	// Namespace is the cached "sub" claim.
	Namespace string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
