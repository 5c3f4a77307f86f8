// Package storage provides the small key/value stores that hold a visitor's
// history record and debug overrides.
package storage

import (
	"context"
)

// Store is a per-visitor key/value store. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Layered reads from Primary first and then from each Fallback in turn. Writes
// only go to Primary. It lets a cookie-borne debug override reach a visitor
// whose history lives in SQL.
type Layered struct {
	Primary   Store
	Fallbacks []Store
}

// Get returns the first layer that has key.
func (l Layered) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := l.Primary.Get(ctx, key)
	if err != nil || ok {
		return value, ok, err
	}
	for _, s := range l.Fallbacks {
		if value, ok, err := s.Get(ctx, key); err != nil || ok {
			return value, ok, err
		}
	}
	return "", false, nil
}

// Set writes to Primary only.
func (l Layered) Set(ctx context.Context, key, value string) error {
	return l.Primary.Set(ctx, key, value)
}
