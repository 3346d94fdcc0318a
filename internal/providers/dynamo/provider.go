// Package dynamo implements providers.Provider on top of DynamoDB.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ark-lookup-api/internal/providers"
)

const (
	opGetItem = "GetItem"

	// Attribute names of the single-table layout
	AttrPK   = "PK"
	AttrSK   = "SK"
	AttrData = "Data"
)

// API is the subset of *dynamodb.Client used by the provider
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Provider reads one entity kind from a DynamoDB table. Entity attributes are
// stored in the item's Data map.
type Provider[E any] struct {
	table          string
	kind           providers.Kind[E]
	consistentRead bool
}

// Option configures a Provider
type Option func(*options)

type options struct {
	consistentRead bool
}

// WithConsistentRead enables strongly consistent reads
func WithConsistentRead(enabled bool) Option {
	return func(o *options) {
		o.consistentRead = enabled
	}
}

// New creates a provider bound to table
func New[E any](table string, kind providers.Kind[E], opts ...Option) *Provider[E] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Provider[E]{
		table:          table,
		kind:           kind,
		consistentRead: o.consistentRead,
	}
}

// Table returns the table the provider is bound to
func (p *Provider[E]) Table() string {
	return p.table
}

// Get implements providers.Provider
func (p *Provider[E]) Get(ctx context.Context, client API, key providers.Key) (*E, error) {
	pk, sk, err := p.kind.ItemKey(key)
	if err != nil {
		return nil, providers.Classify(opGetItem, p.table, key, err)
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.table),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: pk},
			AttrSK: &types.AttributeValueMemberS{Value: sk},
		},
		ConsistentRead: aws.Bool(p.consistentRead),
	})
	if err != nil {
		return nil, providers.Classify(opGetItem, p.table, key, err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}

	data, ok := out.Item[AttrData].(*types.AttributeValueMemberM)
	if !ok {
		return nil, providers.DecodeError(opGetItem, p.table, key, fmt.Errorf("item %s/%s has no %s map", pk, sk, AttrData))
	}

	var entity E
	if err := attributevalue.UnmarshalMap(data.Value, &entity); err != nil {
		return nil, providers.DecodeError(opGetItem, p.table, key, err)
	}
	return &entity, nil
}
