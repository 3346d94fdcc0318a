// Package rediskv implements providers.Provider on top of Redis string keys.
package rediskv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"ark-lookup-api/internal/providers"
)

const opGet = "GET"

// Getter is the subset of *redis.Client used by the provider
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Provider reads one entity kind stored as JSON under "<table>:<pk>:<sk>"
type Provider[E any] struct {
	table string
	kind  providers.Kind[E]
}

// New creates a provider bound to table, used as the key prefix
func New[E any](table string, kind providers.Kind[E]) *Provider[E] {
	return &Provider[E]{table: table, kind: kind}
}

// ItemKey returns the Redis key holding the entity for key
func (p *Provider[E]) ItemKey(key providers.Key) (string, error) {
	pk, sk, err := p.kind.ItemKey(key)
	if err != nil {
		return "", err
	}
	return p.table + ":" + pk + ":" + sk, nil
}

// Get implements providers.Provider
func (p *Provider[E]) Get(ctx context.Context, client Getter, key providers.Key) (*E, error) {
	redisKey, err := p.ItemKey(key)
	if err != nil {
		return nil, providers.Classify(opGet, p.table, key, err)
	}

	data, err := client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, providers.Classify(opGet, p.table, key, err)
	}

	var entity E
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, providers.DecodeError(opGet, p.table, key, err)
	}
	return &entity, nil
}
