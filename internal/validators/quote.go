// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	FieldText      = "text"
	FieldCategory  = "category"
	FieldQuotes    = "quotes"
	FieldLength    = "length"
	FieldNamespace = "namespace"
	FieldAccessKey = "access_key"
)

// QuoteValidator validates quotes and the request types that carry them.
type QuoteValidator struct{}

// NewQuoteValidator returns a Validator for [models.Quote], []models.Quote,
// [models.PushRequest] and [models.AuthRequest] values.
func NewQuoteValidator() Validator {
	return &QuoteValidator{}
}

func (v *QuoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Quote:
		return v.validateQuote(value, fields...)
	case *models.Quote:
		return v.validateQuote(*value, fields...)

	case []models.Quote:
		return v.validateQuotes(value)

	case models.PushRequest:
		return v.validatePushRequest(value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(*value, fields...)

	case models.AuthRequest:
		return v.validateAuthRequest(value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *QuoteValidator) validateQuote(q models.Quote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldCategory}
	}

	for _, field := range fields {
		switch field {
		case FieldText:
			if strings.TrimSpace(q.Text) == "" {
				return ErrEmptyText
			}
		case FieldCategory:
			if strings.TrimSpace(q.Category) == "" {
				return ErrEmptyCategory
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *QuoteValidator) validateQuotes(quotes []models.Quote) error {
	for i, q := range quotes {
		if err := v.validateQuote(q); err != nil {
			return fmt.Errorf("quote #%d: %w", i, err)
		}
	}
	return nil
}

func (v *QuoteValidator) validatePushRequest(req models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuotes, FieldLength}
	}

	for _, field := range fields {
		switch field {
		case FieldQuotes:
			if err := v.validateQuotes(req.Quotes); err != nil {
				return err
			}
		case FieldLength:
			if req.Length != len(req.Quotes) {
				return fmt.Errorf("%w: declared %d, got %d", ErrLengthMismatch, req.Length, len(req.Quotes))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *QuoteValidator) validateAuthRequest(req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNamespace, FieldAccessKey}
	}

	for _, field := range fields {
		switch field {
		case FieldNamespace:
			if strings.TrimSpace(req.Namespace) == "" {
				return ErrEmptyNamespace
			}
		case FieldAccessKey:
			if req.AccessKey == "" {
				return ErrEmptyAccessKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// importEntry mirrors the import file element. Pointers distinguish a
// missing field from an empty one; json.RawMessage lets non-string values
// fail with ErrInvalidEntry instead of a decoder type error.
type importEntry struct {
	Text     json.RawMessage `json:"text"`
	Category json.RawMessage `json:"category"`
}

// ParseImport decodes raw as a JSON array of {text, category} objects.
//
// Validation is all-or-nothing: if the payload is not an array, or any
// element is not an object with non-empty string text and category, no quotes
// are returned. Returned quotes are trimmed.
func ParseImport(raw []byte) ([]models.Quote, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnArray, err)
	}

	quotes := make([]models.Quote, 0, len(elements))
	for i, element := range elements {
		q, err := parseImportEntry(element)
		if err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i, err)
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

func parseImportEntry(element json.RawMessage) (models.Quote, error) {
	element = bytes.TrimSpace(element)
	if len(element) == 0 || element[0] != '{' {
		return models.Quote{}, ErrInvalidEntry
	}

	var entry importEntry
	if err := json.Unmarshal(element, &entry); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	text, ok := jsonString(entry.Text)
	if !ok {
		return models.Quote{}, ErrInvalidEntry
	}
	category, ok := jsonString(entry.Category)
	if !ok {
		return models.Quote{}, ErrInvalidEntry
	}

	q := models.NewQuote(text, category)
	if q.Text == "" {
		return models.Quote{}, ErrEmptyText
	}
	if q.Category == "" {
		return models.Quote{}, ErrEmptyCategory
	}

	return q, nil
}

func jsonString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
