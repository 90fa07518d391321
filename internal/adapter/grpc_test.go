// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type fakeRemoteStoreServer struct {
	mu       sync.Mutex
	token    string
	auths    int
	stored   []models.Quote
	lastPush models.PushRequest
	failWith error
}

func (s *fakeRemoteStoreServer) authorize(ctx context.Context) error {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 || values[0] != "Bearer "+s.token {
		return status.Error(codes.Unauthenticated, "invalid token")
	}
	return nil
}

func (s *fakeRemoteStoreServer) Authenticate(_ context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Namespace != "alice" || req.AccessKey != "key" {
		return nil, status.Error(codes.Unauthenticated, "bad credentials")
	}
	s.auths++
	s.token = "grpc-token"
	return &models.AuthResponse{Token: s.token}, nil
}

func (s *fakeRemoteStoreServer) Fetch(ctx context.Context, _ *models.FetchRequest) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &models.Snapshot{Namespace: "alice", Quotes: s.stored, Length: len(s.stored)}, nil
}

func (s *fakeRemoteStoreServer) Push(ctx context.Context, req *models.PushRequest) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	s.lastPush = *req
	s.stored = req.Quotes
	return &models.Snapshot{Namespace: "alice", Quotes: s.stored, Length: len(s.stored)}, nil
}

func newBufconnRemote(t *testing.T, srv rpc.RemoteStoreServer) *GRPCRemoteStore {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	rpc.RegisterRemoteStoreServer(s, srv)
	go s.Serve(lis) //nolint:errcheck
	t.Cleanup(s.Stop)

	remote, err := NewGRPCRemoteStore(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet"},
		config.ClientApp{Namespace: "alice", AccessKey: "key", HashKey: testHashKey},
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { remote.Close() })

	return remote
}

// ── gRPC adapter ─────────────────────────────────────────────────────────────

func TestNewGRPCRemoteStore_Validation(t *testing.T) {
	_, err := NewGRPCRemoteStore(config.ClientAdapter{}, config.ClientApp{Namespace: "a", AccessKey: "k"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewGRPCRemoteStore(config.ClientAdapter{GRPCAddress: "localhost:9090"}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestGRPCRemoteStore_FetchAndPush(t *testing.T) {
	srv := &fakeRemoteStoreServer{stored: models.SeedQuotes()}
	remote := newBufconnRemote(t, srv)
	ctx := context.Background()

	snapshot, err := remote.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedQuotes(), snapshot.Quotes)

	quotes := append(models.SeedQuotes(), models.Quote{Text: "Test", Category: "QA"})
	require.NoError(t, remote.Push(ctx, quotes))

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, quotes, srv.stored)
	assert.Equal(t, 4, srv.lastPush.Length)
	assert.NotEmpty(t, srv.lastPush.Hash)
	assert.Equal(t, 1, srv.auths)
}

func TestGRPCRemoteStore_ReauthenticatesOnce(t *testing.T) {
	srv := &fakeRemoteStoreServer{}
	remote := newBufconnRemote(t, srv)
	remote.token = "expired"

	_, err := remote.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "grpc-token", remote.token)
}

func TestGRPCRemoteStore_BadCredentials(t *testing.T) {
	remote := newBufconnRemote(t, &fakeRemoteStoreServer{})
	remote.accessKey = "wrong"

	_, err := remote.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCRemoteStore_ErrorMapping(t *testing.T) {
	srv := &fakeRemoteStoreServer{failWith: status.Error(codes.Unavailable, "down")}
	remote := newBufconnRemote(t, srv)

	_, err := remote.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.InvalidArgument, ErrBadRequest},
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrForbidden},
		{codes.NotFound, ErrNotFound},
		{codes.Aborted, ErrConflict},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrTimeout},
		{codes.Internal, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, mapGRPCError(nil))
	assert.ErrorIs(t, mapGRPCError(context.DeadlineExceeded), ErrTimeout)
}
