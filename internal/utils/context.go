// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used by both the
// quote client and the snapshot server: type-safe context keys, quote
// hashing and digests, HTTP response writing, the resty client wrapper,
// JWT issuing and parsing, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// NamespaceCtxKey is the key used to store the authenticated namespace in the
// context.
//
//	ctx := context.WithValue(ctx, utils.NamespaceCtxKey, "alice")
var NamespaceCtxKey = contextKey("namespace")

// TraceIDCtxKey is the key used to store the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetNamespaceFromContext retrieves the authenticated namespace.
//
// ok is false when the value is missing, empty or not a string.
func GetNamespaceFromContext(ctx context.Context) (string, bool) {
	namespace, ok := ctx.Value(NamespaceCtxKey).(string)
	return namespace, ok && namespace != ""
}

// WithNamespace returns a copy of ctx carrying namespace.
func WithNamespace(ctx context.Context, namespace string) context.Context {
	return context.WithValue(ctx, NamespaceCtxKey, namespace)
}

// GetTraceIDFromContext retrieves the request trace id, or "" if none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
