// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It exchanges a namespace access key for a JWT and validates the tokens it
// issued.
type authService struct {
	// accessKeys maps each namespace to the only key accepted for it.
	accessKeys map[string]string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	keys := make(map[string]string, len(cfg.AccessKeys))
	for ns, key := range cfg.AccessKeys {
		keys[ns] = key
	}

	return &authService{
		accessKeys:    keys,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validators.NewQuoteValidator(),
		logger:        logger,
	}
}

// IssueToken checks req against the configured access keys and issues a
// signed JWT whose subject is the namespace.
//
// Returns:
//   - ErrInvalidDataProvided if the namespace or the access key is empty.
//   - ErrWrongAccessKey for an unknown namespace or a mismatching key.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) IssueToken(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("func", "authService.IssueToken").Msg("invalid auth request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	expected, ok := a.accessKeys[req.Namespace]
	// compare even for unknown namespaces so timing does not reveal which exist
	match := subtle.ConstantTimeCompare([]byte(expected), []byte(req.AccessKey)) == 1
	if !ok || !match {
		log.Warn().Str("func", "authService.IssueToken").Str("namespace", req.Namespace).Msg("wrong access key")
		return models.Token{}, ErrWrongAccessKey
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, req.Namespace, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired so clients know to re-authenticate;
// every other failure (bad signature, wrong issuer, malformed) yields
// ErrTokenIsInvalid. A token for a namespace that is no longer configured is
// invalid too.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	if _, ok := a.accessKeys[token.Namespace]; !ok {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
