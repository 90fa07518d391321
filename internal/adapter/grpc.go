// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// GRPCRemoteStore talks to quotesync.RemoteStore. It owns its client
// connection; call Close when done.
type GRPCRemoteStore struct {
	conn   *grpc.ClientConn
	client *rpc.RemoteStoreClient
	hasher *utils.Hasher

	namespace string
	accessKey string

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewGRPCRemoteStore dials adapterCfg.GRPCAddress (lazily, as grpc.NewClient
// does) and returns a [RemoteStore] over it. extra dial options are appended
// after the defaults; tests use them to inject a bufconn dialer.
func NewGRPCRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger, extra ...grpc.DialOption) (*GRPCRemoteStore, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: empty grpc address", ErrInvalidAddress)
	}
	if appCfg.Namespace == "" || appCfg.AccessKey == "" {
		return nil, ErrMissingCredentials
	}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, extra...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	var hasher *utils.Hasher
	if appCfg.HashKey != "" {
		hasher = utils.NewHasher(appCfg.HashKey)
	}

	return &GRPCRemoteStore{
		conn:      conn,
		client:    rpc.NewRemoteStoreClient(conn),
		hasher:    hasher,
		namespace: appCfg.Namespace,
		accessKey: appCfg.AccessKey,
		logger:    log,
	}, nil
}

// Fetch implements [RemoteStore].
func (g *GRPCRemoteStore) Fetch(ctx context.Context) (models.Snapshot, error) {
	var snapshot *models.Snapshot

	err := g.withAuth(ctx, func(ctx context.Context) error {
		var err error
		snapshot, err = g.client.Fetch(ctx, &models.FetchRequest{})
		return err
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch: %w", err)
	}

	out := *snapshot
	out.Quotes = models.CloneQuotes(out.Quotes)
	return out, nil
}

// Push implements [RemoteStore].
func (g *GRPCRemoteStore) Push(ctx context.Context, quotes []models.Quote) error {
	req := &models.PushRequest{
		Quotes: models.CloneQuotes(quotes),
		Length: len(quotes),
	}
	if g.hasher != nil {
		hash, err := g.hasher.HashQuotes(req.Quotes)
		if err != nil {
			return fmt.Errorf("push: %w", err)
		}
		req.Hash = hash
	}

	err := g.withAuth(ctx, func(ctx context.Context) error {
		_, err := g.client.Push(ctx, req)
		return err
	})
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// Close tears down the client connection.
func (g *GRPCRemoteStore) Close() error {
	return g.conn.Close()
}

func (g *GRPCRemoteStore) withAuth(ctx context.Context, call func(context.Context) error) error {
	for attempt := 0; ; attempt++ {
		token, err := g.ensureToken(ctx)
		if err != nil {
			return err
		}

		authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		err = mapGRPCError(call(authed))
		if errors.Is(err, ErrUnauthorized) && attempt == 0 {
			g.logger.Debug().Str("func", "GRPCRemoteStore.withAuth").Msg("token rejected, authenticating again")
			g.resetToken(token)
			continue
		}
		return err
	}
}

func (g *GRPCRemoteStore) ensureToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" {
		return g.token, nil
	}

	resp, err := g.client.Authenticate(ctx, &models.AuthRequest{Namespace: g.namespace, AccessKey: g.accessKey})
	if err != nil {
		return "", fmt.Errorf("auth: %w", mapGRPCError(err))
	}
	if resp.Token == "" {
		return "", fmt.Errorf("auth: %w: empty token", ErrUnauthorized)
	}

	g.token = resp.Token
	return g.token, nil
}

func (g *GRPCRemoteStore) resetToken(rejected string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token == rejected {
		g.token = ""
	}
}
