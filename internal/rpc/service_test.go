// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-quote-keeper/models"
)

type echoServer struct {
	pushed []models.Quote
}

func (s *echoServer) Authenticate(_ context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	if req.AccessKey != "secret" {
		return nil, status.Error(codes.Unauthenticated, "bad key")
	}
	return &models.AuthResponse{Token: "token-" + req.Namespace}, nil
}

func (s *echoServer) Fetch(context.Context, *models.FetchRequest) (*models.Snapshot, error) {
	return &models.Snapshot{Quotes: models.SeedQuotes(), Length: 3}, nil
}

func (s *echoServer) Push(_ context.Context, req *models.PushRequest) (*models.Snapshot, error) {
	s.pushed = req.Quotes
	return &models.Snapshot{Quotes: req.Quotes, Length: len(req.Quotes)}, nil
}

func startBufconn(t *testing.T, srv RemoteStoreServer, opts ...grpc.ServerOption) *RemoteStoreClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterRemoteStoreServer(s, srv)
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

	return NewRemoteStoreClient(conn)
}

// ── codec ────────────────────────────────────────────────────────────────────

func TestJSONCodec_Marshal(t *testing.T) {
	data, err := jsonCodec{}.Marshal(&models.PushRequest{Quotes: []models.Quote{{Text: "a", Category: "x"}}, Length: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"quotes":[{"text":"a","category":"x"}],"length":1}`, string(data))
	assert.Equal(t, CodecName, jsonCodec{}.Name())
}

func TestJSONCodec_EmptyPayload(t *testing.T) {
	var req models.FetchRequest
	assert.NoError(t, jsonCodec{}.Unmarshal(nil, &req))
}

func TestJSONCodec_BadPayload(t *testing.T) {
	var snapshot models.Snapshot
	assert.Error(t, jsonCodec{}.Unmarshal([]byte("{"), &snapshot))
}

// ── round trips ──────────────────────────────────────────────────────────────

func TestRemoteStore_RoundTrip(t *testing.T) {
	srv := &echoServer{}
	client := startBufconn(t, srv)
	ctx := context.Background()

	auth, err := client.Authenticate(ctx, &models.AuthRequest{Namespace: "alice", AccessKey: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-alice", auth.Token)

	snapshot, err := client.Fetch(ctx, &models.FetchRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.SeedQuotes(), snapshot.Quotes)

	quotes := []models.Quote{{Text: "a", Category: "x"}}
	pushed, err := client.Push(ctx, &models.PushRequest{Quotes: quotes, Length: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, pushed.Length)
	assert.Equal(t, quotes, srv.pushed)
}

func TestRemoteStore_StatusErrorsPropagate(t *testing.T) {
	client := startBufconn(t, &echoServer{})

	_, err := client.Authenticate(context.Background(), &models.AuthRequest{Namespace: "alice", AccessKey: "wrong"})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRemoteStore_InterceptorSeesFullMethod(t *testing.T) {
	var seen []string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = append(seen, info.FullMethod)
		return handler(ctx, req)
	}
	client := startBufconn(t, &echoServer{}, grpc.UnaryInterceptor(interceptor))
	ctx := context.Background()

	_, err := client.Authenticate(ctx, &models.AuthRequest{Namespace: "a", AccessKey: "secret"})
	require.NoError(t, err)
	_, err = client.Fetch(ctx, &models.FetchRequest{})
	require.NoError(t, err)
	_, err = client.Push(ctx, &models.PushRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{AuthenticateMethod, FetchMethod, PushMethod}, seen)
}
