package providers

import (
	"fmt"

	"ark-lookup-api/internal/models"
)

// Kind describes how one entity type is addressed in the single-table layout
// shared by all backends.
type Kind[E any] struct {
	Name  string
	Arity int
	keys  func(key Key) (pk, sk string)
}

// ItemKey returns the partition and sort key for key
func (k Kind[E]) ItemKey(key Key) (pk, sk string, err error) {
	if len(key) != k.Arity {
		return "", "", fmt.Errorf("%w: %s expects %d key parts, got %d", ErrInvalidKey, k.Name, k.Arity, len(key))
	}
	for i, part := range key {
		if part == "" {
			return "", "", fmt.Errorf("%w: %s key part %d is empty", ErrInvalidKey, k.Name, i)
		}
	}
	pk, sk = k.keys(key)
	return pk, sk, nil
}

// Entity kinds served by this API
var (
	Contracts = Kind[models.Contract]{
		Name:  "contract",
		Arity: 1,
		keys: func(key Key) (string, string) {
			return "CONTRACT#" + key[0], "CONTRACT"
		},
	}

	Tokens = Kind[models.Token]{
		Name:  "token",
		Arity: 2,
		keys: func(key Key) (string, string) {
			return "TOKEN#" + key[0], "TOKEN#" + key[1]
		},
	}

	Blocks = Kind[models.Block]{
		Name:  "block",
		Arity: 1,
		keys: func(key Key) (string, string) {
			return "BLOCK#" + key[0], "BLOCK"
		},
	}

	Events = Kind[models.Event]{
		Name:  "event",
		Arity: 2,
		keys: func(key Key) (string, string) {
			return "EVENT#" + key[0], "EVENT#" + key[1]
		},
	}
)
