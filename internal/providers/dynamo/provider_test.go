package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ark-lookup-api/internal/models"
	"ark-lookup-api/internal/providers"
)

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	err   error
	calls int
	last  *dynamodb.GetItemInput
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.calls++
	f.last = params
	if f.err != nil {
		return nil, f.err
	}
	pk := params.Key[AttrPK].(*types.AttributeValueMemberS).Value
	sk := params.Key[AttrSK].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[pk+"|"+sk]}, nil
}

func contractItem(t *testing.T, c models.Contract) map[string]types.AttributeValue {
	t.Helper()
	data, err := attributevalue.MarshalMap(c)
	if err != nil {
		t.Fatalf("MarshalMap failed: %v", err)
	}
	return map[string]types.AttributeValue{
		AttrPK:   &types.AttributeValueMemberS{Value: "CONTRACT#" + c.Address},
		AttrSK:   &types.AttributeValueMemberS{Value: "CONTRACT"},
		AttrData: &types.AttributeValueMemberM{Value: data},
	}
}

func TestProviderGet(t *testing.T) {
	ctx := context.Background()
	want := models.Contract{Address: "abcdef", ContractType: models.ContractTypeERC721, Name: "Everai", Symbol: "EVR"}

	client := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
		"CONTRACT#abcdef|CONTRACT": contractItem(t, want),
	}}
	p := New("ark-mainnet", providers.Contracts, WithConsistentRead(true))

	t.Run("Found", func(t *testing.T) {
		got, err := p.Get(ctx, client, providers.Key{"abcdef"})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got == nil || *got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
		if *client.last.TableName != "ark-mainnet" {
			t.Errorf("Expected table ark-mainnet, got %s", *client.last.TableName)
		}
		if !*client.last.ConsistentRead {
			t.Error("Expected consistent read")
		}
	})

	t.Run("Absent", func(t *testing.T) {
		got, err := p.Get(ctx, client, providers.Key{"0123"})
		if err != nil {
			t.Fatalf("Absence must not be an error: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("MissingData", func(t *testing.T) {
		client.items["CONTRACT#bad|CONTRACT"] = map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: "CONTRACT#bad"},
		}
		_, err := p.Get(ctx, client, providers.Key{"bad"})
		if !providers.IsDecode(err) {
			t.Errorf("Expected decode error, got %v", err)
		}
	})

	t.Run("MalformedData", func(t *testing.T) {
		client.items["CONTRACT#odd|CONTRACT"] = map[string]types.AttributeValue{
			AttrData: &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"Address": &types.AttributeValueMemberBOOL{Value: true},
			}},
		}
		_, err := p.Get(ctx, client, providers.Key{"odd"})
		if !providers.IsDecode(err) {
			t.Errorf("Expected decode error, got %v", err)
		}
	})
}

func TestProviderErrors(t *testing.T) {
	ctx := context.Background()
	p := New("ark-mainnet", providers.Contracts)

	t.Run("Timeout", func(t *testing.T) {
		client := &fakeDynamo{err: context.DeadlineExceeded}
		_, err := p.Get(ctx, client, providers.Key{"abc"})
		if !providers.IsTimeout(err) {
			t.Errorf("Expected timeout, got %v", err)
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		client := &fakeDynamo{err: &types.ResourceNotFoundException{}}
		_, err := p.Get(ctx, client, providers.Key{"abc"})
		if !providers.IsUnavailable(err) {
			t.Errorf("Expected unavailable, got %v", err)
		}
	})

	t.Run("WrongArity", func(t *testing.T) {
		client := &fakeDynamo{}
		_, err := p.Get(ctx, client, providers.Key{"abc", "def"})
		if !errors.Is(err, providers.ErrInvalidKey) {
			t.Errorf("Expected invalid key, got %v", err)
		}
		if client.calls != 0 {
			t.Errorf("Store must not be called for an invalid key, got %d calls", client.calls)
		}
	})
}

func TestTokenProviderCompositeKey(t *testing.T) {
	token := models.Token{ContractAddress: "abc", TokenID: "01", Owner: "def", BlockTimestamp: 1700000000}
	data, err := attributevalue.MarshalMap(token)
	if err != nil {
		t.Fatalf("MarshalMap failed: %v", err)
	}
	client := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
		"TOKEN#abc|TOKEN#01": {AttrData: &types.AttributeValueMemberM{Value: data}},
	}}

	got, err := New("ark", providers.Tokens).Get(context.Background(), client, providers.Key{"abc", "01"})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || *got != token {
		t.Errorf("Expected %+v, got %+v", token, got)
	}
}
