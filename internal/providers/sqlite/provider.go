// Package sqlite implements providers.Provider on top of the SQLite items table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"ark-lookup-api/internal/database"
	"ark-lookup-api/internal/providers"
)

const opSelect = "SelectItem"

// Querier is the subset of *sql.DB used by the provider
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Provider reads one entity kind from the items table, scoped to a logical
// table name. The data column holds the entity as JSON.
type Provider[E any] struct {
	table string
	kind  providers.Kind[E]
	query string
}

// New creates a provider bound to table
func New[E any](table string, kind providers.Kind[E]) *Provider[E] {
	return &Provider[E]{
		table: table,
		kind:  kind,
		query: "SELECT data FROM " + database.ItemsTable + " WHERE table_name = ? AND pk = ? AND sk = ?",
	}
}

// Get implements providers.Provider
func (p *Provider[E]) Get(ctx context.Context, client Querier, key providers.Key) (*E, error) {
	pk, sk, err := p.kind.ItemKey(key)
	if err != nil {
		return nil, providers.Classify(opSelect, p.table, key, err)
	}

	var data []byte
	err = client.QueryRowContext(ctx, p.query, p.table, pk, sk).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, providers.Classify(opSelect, p.table, key, err)
	}

	var entity E
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, providers.DecodeError(opSelect, p.table, key, err)
	}
	return &entity, nil
}
