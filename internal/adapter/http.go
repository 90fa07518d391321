// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	authTokenPath = "/api/auth/token"
	quotesPath    = "/api/quotes"
)

type httpRemoteStore struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	namespace string
	accessKey string

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the request timeout. A bearer
// token is obtained lazily on the first call by exchanging the namespace and
// access key from appCfg.
//
// Returns an error if the address cannot be parsed or the credentials are
// missing.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if appCfg.Namespace == "" || appCfg.AccessKey == "" {
		return nil, ErrMissingCredentials
	}

	var hasher *utils.Hasher
	if appCfg.HashKey != "" {
		hasher = utils.NewHasher(appCfg.HashKey)
	}

	return &httpRemoteStore{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:    hasher,
		namespace: appCfg.Namespace,
		accessKey: appCfg.AccessKey,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [RemoteStore]. It GETs /api/quotes for the authenticated
// namespace.
func (h *httpRemoteStore) Fetch(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot

	err := h.withAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		snapshot = models.Snapshot{}
		return req.SetResult(&snapshot).Get(quotesPath)
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch: %w", err)
	}

	snapshot.Quotes = models.CloneQuotes(snapshot.Quotes)
	return snapshot, nil
}

// Push implements [RemoteStore]. It PUTs the whole collection to /api/quotes
// together with its length and, when a hash key is configured, the
// HMAC-SHA256 of the quotes.
func (h *httpRemoteStore) Push(ctx context.Context, quotes []models.Quote) error {
	body := models.PushRequest{
		Quotes: models.CloneQuotes(quotes),
		Length: len(quotes),
	}
	if h.hasher != nil {
		hash, err := h.hasher.HashQuotes(body.Quotes)
		if err != nil {
			return fmt.Errorf("push: %w", err)
		}
		body.Hash = hash
	}

	err := h.withAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(body).Put(quotesPath)
	})
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// withAuth runs call with a bearer token, authenticating first when no token
// is held. A 401 response drops the token and retries exactly once.
func (h *httpRemoteStore) withAuth(ctx context.Context, call func(*resty.Request) (*resty.Response, error)) error {
	for attempt := 0; ; attempt++ {
		token, err := h.ensureToken(ctx)
		if err != nil {
			return err
		}

		resp, err := call(h.client.R().SetContext(ctx).SetAuthToken(token))
		if err != nil {
			return mapTransportError("request", err)
		}

		err = mapHTTPError(resp)
		if errors.Is(err, ErrUnauthorized) && attempt == 0 {
			h.logger.Debug().Str("func", "httpRemoteStore.withAuth").Msg("token rejected, authenticating again")
			h.resetToken(token)
			continue
		}
		return err
	}
}

func (h *httpRemoteStore) ensureToken(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != "" {
		return h.token, nil
	}

	var auth models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.AuthRequest{Namespace: h.namespace, AccessKey: h.accessKey}).
		SetResult(&auth).
		Post(authTokenPath)
	if err != nil {
		return "", mapTransportError("auth request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("auth: %w", err)
	}

	token := strings.TrimSpace(auth.Token)
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("auth parse bearer token: %w", err)
		}
	}

	h.token = token
	return token, nil
}

func (h *httpRemoteStore) resetToken(rejected string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.token == rejected {
		h.token = ""
	}
}
