// Package product defines the catalog item carried by the API and the store.
package product

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// ErrMalformed is returned when a request body cannot be read as a Product.
var ErrMalformed = errors.New("product: malformed product")

// Product is one catalog item. ID doubles as the table partition key.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float32 `json:"price"`
}

// List is the envelope returned by bulk reads.
type List struct {
	Products []Product `json:"products"`
}

// NewList wraps products in a List. A nil slice becomes an empty one so the
// envelope always serializes as an array.
func NewList(products []Product) List {
	if products == nil {
		products = []Product{}
	}
	return List{Products: products}
}

// payload mirrors Product with pointer fields so null values can be told
// apart from zero values.
type payload struct {
	ID    *string  `validate:"required"`
	Name  *string  `validate:"required"`
	Price *float32 `validate:"required"`
}

var validate = validator.New()

// Parse decodes a JSON object with exactly the keys id, name and price.
// Keys are matched case-sensitively and may appear only once.
// Any decoding or validation failure is reported as ErrMalformed.
func Parse(body []byte) (Product, error) {
	fields, err := readFields(body)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var p payload
	if err := json.Unmarshal(fields["id"], &p.ID); err != nil {
		return Product{}, fmt.Errorf("%w: id: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(fields["name"], &p.Name); err != nil {
		return Product{}, fmt.Errorf("%w: name: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(fields["price"], &p.Price); err != nil {
		return Product{}, fmt.Errorf("%w: price: %v", ErrMalformed, err)
	}
	if err := validate.Struct(p); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return Product{ID: *p.ID, Name: *p.Name, Price: *p.Price}, nil
}

// readFields splits a single JSON object into its raw values, rejecting
// unknown and repeated keys and any data after the object.
func readFields(body []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	fields := make(map[string]json.RawMessage, 3)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		switch key {
		case "id", "name", "price":
		default:
			return nil, fmt.Errorf("unknown key %q", key)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after object")
	}

	for _, key := range []string{"id", "name", "price"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("missing key %q", key)
		}
	}
	return fields, nil
}
