// Package dynamotest provides an in-memory DynamoDB table for tests.
package dynamotest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Operation names recorded by Table.
const (
	OpGetItem    = "GetItem"
	OpPutItem    = "PutItem"
	OpDeleteItem = "DeleteItem"
	OpScan       = "Scan"
)

// ErrThrottled is a canned failure for FailWith.
var ErrThrottled = errors.New("dynamotest: request throttled")

// Table is a single-table fake keyed by a string partition key.
// Scan returns items in insertion order.
type Table struct {
	keyAttr string

	mu        sync.Mutex
	items     map[string]map[string]types.AttributeValue
	order     []string
	calls     map[string]int
	failures  map[string]error
	lastTable string
}

// New creates an empty table whose partition key attribute is keyAttr.
func New(keyAttr string) *Table {
	return &Table{
		keyAttr:  keyAttr,
		items:    make(map[string]map[string]types.AttributeValue),
		calls:    make(map[string]int),
		failures: make(map[string]error),
	}
}

// FailWith makes every subsequent call of op return err. A nil err clears it.
func (t *Table) FailWith(op string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err == nil {
		delete(t.failures, op)
		return
	}
	t.failures[op] = err
}

// Seed stores a raw item without recording a call.
func (t *Table) Seed(item map[string]types.AttributeValue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key, err := t.keyOf(item)
	if err != nil {
		panic(err)
	}
	t.store(key, item)
}

// Item returns the raw item stored under key.
func (t *Table) Item(key string) (map[string]types.AttributeValue, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	item, ok := t.items[key]
	return item, ok
}

// Len returns the number of stored items.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// Calls returns how many times op was invoked.
func (t *Table) Calls(op string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[op]
}

// TotalCalls returns the number of invocations across all operations.
func (t *Table) TotalCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, n := range t.calls {
		total += n
	}
	return total
}

// LastTable returns the table name passed to the most recent call.
func (t *Table) LastTable() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastTable
}

// GetItem returns a copy of the item under the requested key, if any.
func (t *Table) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record(OpGetItem, params.TableName); err != nil {
		return nil, err
	}
	key, err := t.keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := t.items[key]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

// PutItem stores the item, replacing any item with the same key.
func (t *Table) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record(OpPutItem, params.TableName); err != nil {
		return nil, err
	}
	key, err := t.keyOf(params.Item)
	if err != nil {
		return nil, err
	}
	t.store(key, params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

// DeleteItem removes the item under the key; a missing key is not an error.
func (t *Table) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record(OpDeleteItem, params.TableName); err != nil {
		return nil, err
	}
	key, err := t.keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	if _, ok := t.items[key]; ok {
		delete(t.items, key)
		for i, k := range t.order {
			if k == key {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan returns up to Limit items in insertion order.
func (t *Table) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record(OpScan, params.TableName); err != nil {
		return nil, err
	}

	limit := len(t.order)
	if params.Limit != nil && int(*params.Limit) < limit {
		limit = int(*params.Limit)
	}

	out := &dynamodb.ScanOutput{}
	for _, key := range t.order[:limit] {
		out.Items = append(out.Items, copyItem(t.items[key]))
	}
	out.Count = int32(len(out.Items))
	out.ScannedCount = out.Count
	if limit > 0 && limit < len(t.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			t.keyAttr: &types.AttributeValueMemberS{Value: t.order[limit-1]},
		}
	}
	return out, nil
}

func (t *Table) record(op string, table *string) error {
	t.calls[op]++
	if table != nil {
		t.lastTable = *table
	}
	return t.failures[op]
}

func (t *Table) keyOf(item map[string]types.AttributeValue) (string, error) {
	v, ok := item[t.keyAttr].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("dynamotest: missing key attribute %q", t.keyAttr)
	}
	return v.Value, nil
}

func (t *Table) store(key string, item map[string]types.AttributeValue) {
	if _, ok := t.items[key]; !ok {
		t.order = append(t.order, key)
	}
	t.items[key] = copyItem(item)
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
