// Package rpgerr provides contextual error wrapping: attach op/entity
// metadata to an error without losing errors.Is/As compatibility.
package rpgerr

import (
	"context"
	"fmt"
)

type contextKey string

const metadataKey contextKey = "monsterai-rpgerr-metadata"

// MetaField is a single metadata key/value pair.
type MetaField struct {
	Key   string
	Value any
}

// Meta builds a MetaField.
func Meta(key string, value any) MetaField {
	return MetaField{Key: key, Value: value}
}

type metadataScope struct {
	fields map[string]any
}

// WithMetadata returns a context carrying additional metadata fields,
// inheriting (and allowing override of) any already present on ctx.
func WithMetadata(ctx context.Context, fields ...MetaField) context.Context {
	scope := &metadataScope{fields: make(map[string]any)}
	if parent, ok := ctx.Value(metadataKey).(*metadataScope); ok && parent != nil {
		for k, v := range parent.fields {
			scope.fields[k] = v
		}
	}
	for _, f := range fields {
		scope.fields[f.Key] = f.Value
	}
	return context.WithValue(ctx, metadataKey, scope)
}

func metadataFrom(ctx context.Context) map[string]any {
	scope, ok := ctx.Value(metadataKey).(*metadataScope)
	if !ok || scope == nil {
		return nil
	}
	return scope.fields
}

// WrapCtx wraps err with op and any metadata accumulated on ctx, in a
// deterministic key order so messages are stable for tests/logs.
func WrapCtx(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	fields := metadataFrom(ctx)
	if len(fields) == 0 {
		return fmt.Errorf("%s: %w", op, err)
	}
	keys := sortedKeys(fields)
	msg := op
	for _, k := range keys {
		msg += fmt.Sprintf(" %s=%v", k, fields[k])
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Small, fixed metadata sets (monster id, race, turn): insertion-order
	// instability is acceptable to avoid pulling in sort for ~3 keys, but
	// we sort anyway for deterministic test output.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
