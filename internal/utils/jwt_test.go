// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Namespace != "alice" || token.Subject != "alice" {
		t.Errorf("expected namespace alice, got %q / %q", token.Namespace, token.Subject)
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	cases := []struct {
		issuer, namespace, key string
		duration               time.Duration
	}{
		{"", "alice", "k", time.Hour},
		{"iss", "", "k", time.Hour},
		{"iss", "alice", "", time.Hour},
		{"iss", "alice", "k", 0},
	}
	for _, c := range cases {
		if _, err := GenerateJWTToken(c.issuer, c.namespace, c.duration, c.key); !errors.Is(err, ErrInvalidTokenParams) {
			t.Errorf("expected ErrInvalidTokenParams for %+v, got %v", c, err)
		}
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "bob", time.Hour, "k")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "k", "iss")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.Namespace != "bob" {
		t.Errorf("expected namespace bob, got %q", parsed.Namespace)
	}
	if parsed.Token == nil || !parsed.Valid {
		t.Error("expected parsed and valid jwt.Token")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	good, _ := GenerateJWTToken("iss", "bob", time.Hour, "k")

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("k"))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))

	cases := map[string]struct {
		token, key, issuer string
	}{
		"wrong key":    {good.SignedString, "other", "iss"},
		"wrong issuer": {good.SignedString, "k", "someone-else"},
		"expired":      {expired, "k", "iss"},
		"no subject":   {noSubject, "k", "iss"},
		"garbage":      {"not.a.jwt", "k", "iss"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(c.token, c.key, c.issuer); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer token", want: "token"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAuthorization) {
				t.Errorf("%q: expected ErrInvalidAuthorization, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got (%q, %v), want %q", tt.header, got, err, tt.want)
		}
	}
}
