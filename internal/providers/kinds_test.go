package providers

import (
	"context"
	"errors"
	"testing"
)

func TestItemKey(t *testing.T) {
	tests := []struct {
		name   string
		pk, sk string
		got    func() (string, string, error)
	}{
		{name: "Contract", pk: "CONTRACT#abc", sk: "CONTRACT", got: func() (string, string, error) { return Contracts.ItemKey(Key{"abc"}) }},
		{name: "Token", pk: "TOKEN#abc", sk: "TOKEN#01", got: func() (string, string, error) { return Tokens.ItemKey(Key{"abc", "01"}) }},
		{name: "Block", pk: "BLOCK#ff", sk: "BLOCK", got: func() (string, string, error) { return Blocks.ItemKey(Key{"ff"}) }},
		{name: "Event", pk: "EVENT#aa", sk: "EVENT#1", got: func() (string, string, error) { return Events.ItemKey(Key{"aa", "1"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk, sk, err := tt.got()
			if err != nil {
				t.Fatalf("ItemKey failed: %v", err)
			}
			if pk != tt.pk || sk != tt.sk {
				t.Errorf("Expected (%s, %s), got (%s, %s)", tt.pk, tt.sk, pk, sk)
			}
		})
	}
}

func TestItemKeyArity(t *testing.T) {
	if _, _, err := Tokens.ItemKey(Key{"abc"}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey for short key, got %v", err)
	}
	if _, _, err := Contracts.ItemKey(Key{""}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey for empty part, got %v", err)
	}
}

func TestProviderFunc(t *testing.T) {
	var p Provider[string, int] = ProviderFunc[string, int](func(ctx context.Context, client string, key Key) (*int, error) {
		n := len(client) + len(key)
		return &n, nil
	})

	got, err := p.Get(context.Background(), "abc", Key{"x"})
	if err != nil || *got != 4 {
		t.Errorf("Unexpected result %v, %v", got, err)
	}
}
