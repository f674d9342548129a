// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed or freshly signed API bearer token.
//
// Subject is the client identity the token was issued to; the stub service
// logs it with every authenticated request.
type Token struct {
	// Token is the underlying JWT. Only the compact form leaves the process.
	*jwt.Token `json:"-"`

	// RegisteredClaims gives access to sub, exp, iat and iss.
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`
}

// GetClient returns the "sub" claim.
func (t *Token) GetClient() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting client from token: empty subject")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
