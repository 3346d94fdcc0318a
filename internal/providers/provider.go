// Package providers defines the read-only lookup capability shared by every
// store backend, the entity kinds it can look up, and the store error taxonomy.
package providers

import (
	"context"
	"strings"
)

// Key is an ordered list of validated lookup values. Most kinds use a single
// part; composite kinds (tokens, events) use two.
type Key []string

func (k Key) String() string {
	return strings.Join(k, "/")
}

// Provider looks up entities of type E through a store client of type C.
//
// Get returns the entity when the key exists, (nil, nil) when it does not,
// and a *StoreError when the store could not answer. Implementations hold no
// request-scoped state and are safe for concurrent use.
type Provider[C, E any] interface {
	Get(ctx context.Context, client C, key Key) (*E, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface
type ProviderFunc[C, E any] func(ctx context.Context, client C, key Key) (*E, error)

// Get calls f(ctx, client, key)
func (f ProviderFunc[C, E]) Get(ctx context.Context, client C, key Key) (*E, error) {
	return f(ctx, client, key)
}
