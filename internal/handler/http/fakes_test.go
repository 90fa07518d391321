// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testNamespace = "alice"
	testToken     = "valid-token"
	expiredToken  = "expired-token"
)

type mockAuthSvc struct {
	issueErr error
}

func (m *mockAuthSvc) IssueToken(_ context.Context, req models.AuthRequest) (models.Token, error) {
	if m.issueErr != nil {
		return models.Token{}, m.issueErr
	}
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expires)},
		SignedString:     testToken,
		Namespace:        req.Namespace,
	}, nil
}

func (m *mockAuthSvc) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case testToken:
		return models.Token{SignedString: tokenString, Namespace: testNamespace}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	default:
		return models.Token{}, service.ErrTokenIsInvalid
	}
}

type mockSnapshotSvc struct {
	mu       sync.Mutex
	stored   map[string]models.Snapshot
	fetchErr error
	pushErr  error
}

func newMockSnapshotSvc() *mockSnapshotSvc {
	return &mockSnapshotSvc{stored: map[string]models.Snapshot{}}
}

func (m *mockSnapshotSvc) Fetch(_ context.Context, ns string) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return models.Snapshot{}, m.fetchErr
	}
	snap, ok := m.stored[ns]
	if !ok {
		return models.Snapshot{Namespace: ns, Quotes: []models.Quote{}}, nil
	}
	return snap, nil
}

func (m *mockSnapshotSvc) Push(_ context.Context, ns string, req models.PushRequest) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pushErr != nil {
		return models.Snapshot{}, m.pushErr
	}
	snap := models.Snapshot{Namespace: ns, Quotes: req.Quotes, Length: len(req.Quotes)}
	m.stored[ns] = snap
	return snap, nil
}

type mockAppInfoSvc struct{ version string }

func (m mockAppInfoSvc) GetAppVersion(context.Context) string { return m.version }

type recordedRequest struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, recordedRequest{method: method, route: route, status: status})
}

func (o *recordingObserver) last() recordedRequest {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.requests) == 0 {
		return recordedRequest{}
	}
	return o.requests[len(o.requests)-1]
}

type testEnv struct {
	handler   *Handler
	snapshots *mockSnapshotSvc
	auth      *mockAuthSvc
	observer  *recordingObserver
}

func newTestEnv(hashKey string) *testEnv {
	env := &testEnv{
		snapshots: newMockSnapshotSvc(),
		auth:      &mockAuthSvc{},
		observer:  &recordingObserver{},
	}
	services := &service.Services{
		AuthService:     env.auth,
		SnapshotService: env.snapshots,
		AppInfoService:  mockAppInfoSvc{version: "v1.2.3"},
	}
	env.handler = NewHandler(services, hashKey, env.observer, logger.Nop())
	return env
}
