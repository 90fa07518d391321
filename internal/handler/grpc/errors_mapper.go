// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidDataProvided:  codes.InvalidArgument,
	service.ErrIntegrityCheckFailed: codes.InvalidArgument,
	service.ErrWrongAccessKey:       codes.Unauthenticated,
	service.ErrTokenIsExpired:       codes.Unauthenticated,
	service.ErrTokenIsInvalid:       codes.Unauthenticated,
	service.ErrTokenCreationFailed:  codes.Internal,
	service.ErrSnapshotStorage:      codes.Internal,

	context.DeadlineExceeded: codes.DeadlineExceeded,
	context.Canceled:         codes.Canceled,
}

// toStatus converts a service error into a gRPC status. Internal errors keep
// only their code's name so storage details stay on the server.
func toStatus(err error) error {
	code := codes.Internal
	for target, c := range errorCodeMap {
		if errors.Is(err, target) {
			code = c
			break
		}
	}

	if code == codes.Internal {
		return status.Error(code, code.String())
	}
	return status.Error(code, err.Error())
}
