// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.ServerApp{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "quote-keeper",
		TokenDuration: time.Hour,
		AccessKeys:    map[string]string{"alice": "s3cret", "bob": "hunter2"},
	}, logger.Nop())
}

// ── IssueToken ───────────────────────────────────────────────────────────────

func TestAuthService_IssueToken_Success(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.IssueToken(context.Background(), models.AuthRequest{Namespace: "alice", AccessKey: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Namespace)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Namespace)
}

func TestAuthService_IssueToken_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AuthRequest
		wantErr error
	}{
		{name: "empty namespace", req: models.AuthRequest{AccessKey: "s3cret"}, wantErr: ErrInvalidDataProvided},
		{name: "empty key", req: models.AuthRequest{Namespace: "alice"}, wantErr: ErrInvalidDataProvided},
		{name: "wrong key", req: models.AuthRequest{Namespace: "alice", AccessKey: "hunter2"}, wantErr: ErrWrongAccessKey},
		{name: "unknown namespace", req: models.AuthRequest{Namespace: "carol", AccessKey: "s3cret"}, wantErr: ErrWrongAccessKey},
		{name: "key prefix", req: models.AuthRequest{Namespace: "alice", AccessKey: "s3c"}, wantErr: ErrWrongAccessKey},
	}

	svc := newTestAuthService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IssueToken(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_IssueToken_SigningFailure(t *testing.T) {
	svc := NewAuthService(config.ServerApp{
		TokenIssuer:   "quote-keeper",
		TokenDuration: time.Hour,
		AccessKeys:    map[string]string{"alice": "s3cret"},
	}, logger.Nop())

	_, err := svc.IssueToken(context.Background(), models.AuthRequest{Namespace: "alice", AccessKey: "s3cret"})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthService()

	expired, err := utils.GenerateJWTToken("quote-keeper", "alice", time.Nanosecond, "sign-key")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	otherKey, err := utils.GenerateJWTToken("quote-keeper", "alice", time.Hour, "other-key")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "alice", time.Hour, "sign-key")
	require.NoError(t, err)

	removed, err := utils.GenerateJWTToken("quote-keeper", "mallory", time.Hour, "sign-key")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpired},
		{name: "wrong signature", token: otherKey.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "wrong issuer", token: otherIssuer.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "unknown namespace", token: removed.SignedString, wantErr: ErrTokenIsInvalid},
		{name: "garbage", token: "not.a.jwt", wantErr: ErrTokenIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
