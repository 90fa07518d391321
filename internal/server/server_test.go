// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/handler"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func newTestHandlers(t *testing.T, cfg *config.ServerConfig) *handler.Handlers {
	t.Helper()
	log := logger.Nop()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, nil, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, nil, log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, nil, log)
	require.NoError(t, err)
	return handlers
}

func testServerConfig(httpAddr, grpcAddr string) *config.ServerConfig {
	return &config.ServerConfig{
		App: config.ServerApp{
			TokenSignKey:  "sign",
			TokenIssuer:   "test",
			TokenDuration: time.Minute,
			Version:       "v9.9.9",
			AccessKeys:    map[string]string{"alice": "key"},
		},
		Server: config.Server{
			HTTPAddress:    httpAddr,
			GRPCAddress:    grpcAddr,
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.ServerStorage{CacheSize: -1},
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BadAddress(t *testing.T) {
	cfg := testServerConfig("bad-address", "")

	_, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())

	assert.Error(t, err)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesBothTransportsAndStopsOnCancel(t *testing.T) {
	cfg := testServerConfig("127.0.0.1:0", "127.0.0.1:0")

	s, err := newServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	// HTTP
	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.httpServer.Addr() + "/api/version/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "v9.9.9", string(body))

	// gRPC
	conn, err := grpc.NewClient(s.gRPCServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := rpc.NewRemoteStoreClient(conn)
	authCtx, authCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer authCancel()
	resp, err := client.Authenticate(authCtx, &models.AuthRequest{Namespace: "alice", AccessKey: "key"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
