package store

import (
	"context"
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/products/product"
)

// DynamoDBAPI is the subset of the DynamoDB client used by Store.
// *dynamodb.Client satisfies it.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store provides DynamoDB operations for products.
// It is safe for concurrent use when the underlying client is.
type Store struct {
	client DynamoDBAPI
	config Config
}

// New creates a new Store instance.
func New(client DynamoDBAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// TableName returns the products table the store reads and writes.
func (s *Store) TableName() string {
	return s.config.TableName
}

// Get retrieves a product by id, returning ErrNotFound if there is no item.
func (s *Store) Get(ctx context.Context, id string) (product.Product, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       KeyFor(id),
	})
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: get item: %w", ErrUnavailable, err)
	}
	if result.Item == nil {
		return product.Product{}, ErrNotFound
	}

	return unmarshalProduct(result.Item)
}

// Put writes a product, replacing any existing item with the same id.
func (s *Store) Put(ctx context.Context, p product.Product) error {
	item, err := marshalProduct(p)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: put item: %w", ErrUnavailable, err)
	}
	return nil
}

// Delete removes a product. Deleting an id that does not exist succeeds.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       KeyFor(id),
	})
	if err != nil {
		return fmt.Errorf("%w: delete item: %w", ErrUnavailable, err)
	}
	return nil
}

// ScanFirst returns up to n products from a single scan page, in whatever
// order DynamoDB yields them. n < 1 means DefaultScanLimit; n is capped at
// math.MaxInt32. No continuation token is exposed.
func (s *Store) ScanFirst(ctx context.Context, n int) ([]product.Product, error) {
	if n < 1 {
		n = DefaultScanLimit
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}

	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.config.TableName),
		Limit:     aws.Int32(int32(n)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan: %w", ErrUnavailable, err)
	}

	items := result.Items
	if len(items) > n {
		items = items[:n]
	}

	products := make([]product.Product, 0, len(items))
	for _, raw := range items {
		p, err := unmarshalProduct(raw)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
