// Package store provides the DynamoDB data access layer for products.
//
// Products live in a single table keyed by the string partition key "PK".
// Each item carries exactly three attributes:
//
//	PK    (S) product id
//	name  (S) display name
//	price (N) single-precision price
//
// # Operations
//
// [Store] exposes four operations:
//
//   - [Store.Get] reads one product by id
//   - [Store.Put] writes a product, overwriting any existing item
//   - [Store.Delete] removes a product; deleting a missing id is not an error
//   - [Store.ScanFirst] returns up to n products in table order
//
// There are no conditional writes and no multi-item transactions: put is
// last-writer-wins and delete is idempotent.
//
// # Configuration
//
// Use [DefaultConfig] and override the table name:
//
//	cfg := store.DefaultConfig()
//	cfg.TableName = os.Getenv("PRODUCT_TABLE")
//	s := store.New(dynamodb.NewFromConfig(awsCfg), cfg)
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrNotFound] - no item with the given id
//   - [ErrIncomplete] - the item is missing PK, name or price
//   - [ErrUnavailable] - the DynamoDB call itself failed
package store
