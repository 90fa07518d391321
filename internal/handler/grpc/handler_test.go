// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	testNamespace = "alice"
	testToken     = "valid-token"
	expiredToken  = "expired-token"
)

type mockAuthSvc struct{ issueErr error }

func (m *mockAuthSvc) IssueToken(_ context.Context, req models.AuthRequest) (models.Token, error) {
	if m.issueErr != nil {
		return models.Token{}, m.issueErr
	}
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))},
		SignedString:     testToken,
		Namespace:        req.Namespace,
	}, nil
}

func (m *mockAuthSvc) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case testToken:
		return models.Token{Namespace: testNamespace}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	}
	return models.Token{}, service.ErrTokenIsInvalid
}

type mockSnapshotSvc struct {
	mu       sync.Mutex
	stored   map[string]models.Snapshot
	fetchErr error
}

func (m *mockSnapshotSvc) Fetch(_ context.Context, ns string) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return models.Snapshot{}, m.fetchErr
	}
	if snap, ok := m.stored[ns]; ok {
		return snap, nil
	}
	return models.Snapshot{Namespace: ns, Quotes: []models.Quote{}}, nil
}

func (m *mockSnapshotSvc) Push(_ context.Context, ns string, req models.PushRequest) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(req.Quotes) > 0 && req.Quotes[0].Text == "" {
		return models.Snapshot{}, service.ErrInvalidDataProvided
	}
	snap := models.Snapshot{Namespace: ns, Quotes: req.Quotes, Length: len(req.Quotes)}
	m.stored[ns] = snap
	return snap, nil
}

type mockAppInfoSvc struct{}

func (mockAppInfoSvc) GetAppVersion(context.Context) string { return "test" }

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]string
}

func (o *recordingObserver) ObserveRPC(method, code string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls[method] = code
}

func (o *recordingObserver) code(method string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[method]
}

type testEnv struct {
	client    *rpc.RemoteStoreClient
	auth      *mockAuthSvc
	snapshots *mockSnapshotSvc
	observer  *recordingObserver
}

func startTestServer(t *testing.T, hashKey string) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:      &mockAuthSvc{},
		snapshots: &mockSnapshotSvc{stored: map[string]models.Snapshot{}},
		observer:  &recordingObserver{calls: map[string]string{}},
	}
	services := &service.Services{
		AuthService:     env.auth,
		SnapshotService: env.snapshots,
		AppInfoService:  mockAppInfoSvc{},
	}
	h := NewHandler(services, hashKey, env.observer, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(h.Interceptors()...))
	rpc.RegisterRemoteStoreServer(s, h)
	go s.Serve(lis) //nolint:errcheck
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	env.client = rpc.NewRemoteStoreClient(conn)
	return env
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

var sampleQuotes = []models.Quote{{Text: "a", Category: "X"}, {Text: "b", Category: "Y"}}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticate_IssuesToken(t *testing.T) {
	env := startTestServer(t, "")

	resp, err := env.client.Authenticate(context.Background(), &models.AuthRequest{Namespace: testNamespace, AccessKey: "k"})

	require.NoError(t, err)
	assert.Equal(t, testToken, resp.Token)
	assert.Equal(t, 2030, resp.ExpiresAt.Year())
	assert.Equal(t, codes.OK.String(), env.observer.code(rpc.AuthenticateMethod))
}

func TestAuthenticate_WrongKey(t *testing.T) {
	env := startTestServer(t, "")
	env.auth.issueErr = service.ErrWrongAccessKey

	_, err := env.client.Authenticate(context.Background(), &models.AuthRequest{Namespace: testNamespace, AccessKey: "bad"})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, codes.Unauthenticated.String(), env.observer.code(rpc.AuthenticateMethod))
}

// ── auth interceptor ─────────────────────────────────────────────────────────

func TestAuthInterceptor_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		wantMsg string
	}{
		{"no metadata", context.Background(), ErrMissingAuthorization.Error()},
		{"not bearer", metadata.AppendToOutgoingContext(context.Background(), "authorization", "Basic x"), utils.ErrInvalidAuthorization.Error()},
		{"expired", withToken(expiredToken), service.ErrTokenIsExpired.Error()},
		{"invalid", withToken("garbage"), service.ErrTokenIsInvalid.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := startTestServer(t, "")

			_, err := env.client.Fetch(tt.ctx, &models.FetchRequest{})

			st, _ := status.FromError(err)
			assert.Equal(t, codes.Unauthenticated, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

// ── Fetch / Push ─────────────────────────────────────────────────────────────

func TestFetch_EmptyNamespace(t *testing.T) {
	env := startTestServer(t, "")

	snap, err := env.client.Fetch(withToken(testToken), &models.FetchRequest{})

	require.NoError(t, err)
	assert.Equal(t, testNamespace, snap.Namespace)
	assert.Empty(t, snap.Quotes)
}

func TestPushThenFetch(t *testing.T) {
	env := startTestServer(t, "")

	_, err := env.client.Push(withToken(testToken), &models.PushRequest{Quotes: sampleQuotes, Length: 2})
	require.NoError(t, err)

	snap, err := env.client.Fetch(withToken(testToken), &models.FetchRequest{})
	require.NoError(t, err)
	assert.Equal(t, sampleQuotes, snap.Quotes)
	assert.Equal(t, 2, snap.Length)
}

func TestFetch_StorageErrorIsInternal(t *testing.T) {
	env := startTestServer(t, "")
	env.snapshots.fetchErr = errors.Join(service.ErrSnapshotStorage, errors.New("connection refused"))

	_, err := env.client.Fetch(withToken(testToken), &models.FetchRequest{})

	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "connection refused")
	assert.Equal(t, codes.Internal.String(), env.observer.code(rpc.FetchMethod))
}

func TestPush_InvalidQuotes(t *testing.T) {
	env := startTestServer(t, "")

	_, err := env.client.Push(withToken(testToken), &models.PushRequest{Quotes: []models.Quote{{Text: "", Category: "X"}}, Length: 1})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPush_HashChecked(t *testing.T) {
	const key = "secret"
	env := startTestServer(t, key)

	_, err := env.client.Push(withToken(testToken), &models.PushRequest{Quotes: sampleQuotes, Length: 2, Hash: "bad"})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, service.ErrIntegrityCheckFailed.Error(), st.Message())

	hash, err := utils.NewHasher(key).HashQuotes(sampleQuotes)
	require.NoError(t, err)
	_, err = env.client.Push(withToken(testToken), &models.PushRequest{Quotes: sampleQuotes, Length: 2, Hash: hash})
	assert.NoError(t, err)
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestTraceID_EchoedInHeader(t *testing.T) {
	env := startTestServer(t, "")

	ctx := metadata.AppendToOutgoingContext(withToken(testToken), traceIDMetadataKey, "trace-42")
	var header metadata.MD
	_, err := env.client.Fetch(ctx, &models.FetchRequest{}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"trace-42"}, header.Get(traceIDMetadataKey))
}

// ── toStatus ─────────────────────────────────────────────────────────────────

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{service.ErrInvalidDataProvided, codes.InvalidArgument},
		{service.ErrWrongAccessKey, codes.Unauthenticated},
		{service.ErrTokenCreationFailed, codes.Internal},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("unknown"), codes.Internal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(toStatus(tt.err)), tt.err.Error())
	}
}
