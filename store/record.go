package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/products/product"
)

// Attribute names of a product item.
const (
	AttrID    = "PK"
	AttrName  = "name"
	AttrPrice = "price"
)

// PK represents a DynamoDB primary key.
type PK map[string]types.AttributeValue

// KeyFor returns the primary key of the product with the given id.
func KeyFor(id string) PK {
	return PK{AttrID: &types.AttributeValueMemberS{Value: id}}
}

// record is the stored shape of a product.
type record struct {
	ID    string  `dynamodbav:"PK"`
	Name  string  `dynamodbav:"name"`
	Price float32 `dynamodbav:"price"`
}

// marshalProduct converts a product into a DynamoDB item.
func marshalProduct(p product.Product) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(record{ID: p.ID, Name: p.Name, Price: p.Price})
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}
	return item, nil
}

// unmarshalProduct converts a DynamoDB item into a product, returning
// ErrIncomplete unless all three attributes are present with the right type.
func unmarshalProduct(raw map[string]types.AttributeValue) (product.Product, error) {
	if _, ok := raw[AttrID].(*types.AttributeValueMemberS); !ok {
		return product.Product{}, fmt.Errorf("%w: missing %s", ErrIncomplete, AttrID)
	}
	if _, ok := raw[AttrName].(*types.AttributeValueMemberS); !ok {
		return product.Product{}, fmt.Errorf("%w: missing %s", ErrIncomplete, AttrName)
	}
	if _, ok := raw[AttrPrice].(*types.AttributeValueMemberN); !ok {
		return product.Product{}, fmt.Errorf("%w: missing %s", ErrIncomplete, AttrPrice)
	}

	var rec record
	if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
		return product.Product{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	return product.Product{ID: rec.ID, Name: rec.Name, Price: rec.Price}, nil
}
