// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// SnapshotValidationService rejects malformed pushes before they reach the
// wrapped service.
type SnapshotValidationService struct {
	inner     SnapshotService
	validator validators.Validator
}

func NewSnapshotValidationService() SnapshotServiceWrapper {
	return &SnapshotValidationService{
		validator: validators.NewQuoteValidator(),
	}
}

func (v *SnapshotValidationService) Fetch(ctx context.Context, namespace string) (models.Snapshot, error) {
	if strings.TrimSpace(namespace) == "" {
		return models.Snapshot{}, fmt.Errorf("%w: empty namespace", ErrInvalidDataProvided)
	}

	return v.inner.Fetch(ctx, namespace)
}

func (v *SnapshotValidationService) Push(ctx context.Context, namespace string, req models.PushRequest) (models.Snapshot, error) {
	if strings.TrimSpace(namespace) == "" {
		return models.Snapshot{}, fmt.Errorf("%w: empty namespace", ErrInvalidDataProvided)
	}

	// every quote must have text and category; Length must match
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Push(ctx, namespace, req)
}

func (v *SnapshotValidationService) Wrap(wrapped SnapshotService) SnapshotService {
	v.inner = wrapped
	return v
}
