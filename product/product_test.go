package product_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jacentio/products/product"
)

func TestParse_Valid(t *testing.T) {
	p, err := product.Parse([]byte(`{"id":"abc","name":"Widget","price":9.99}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "abc" {
		t.Errorf("expected ID 'abc', got %q", p.ID)
	}
	if p.Name != "Widget" {
		t.Errorf("expected Name 'Widget', got %q", p.Name)
	}
	if p.Price != float32(9.99) {
		t.Errorf("expected Price 9.99, got %v", p.Price)
	}
}

func TestParse_ZeroValuesArePresent(t *testing.T) {
	p, err := product.Parse([]byte(`{"id":"abc","name":"","price":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "" || p.Price != 0 {
		t.Errorf("expected zero name and price, got %+v", p)
	}
}

func TestParse_KeyOrderIrrelevant(t *testing.T) {
	p, err := product.Parse([]byte(`{"price":1.5,"name":"Bolt","id":"b-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "b-1" || p.Name != "Bolt" || p.Price != 1.5 {
		t.Errorf("unexpected product %+v", p)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"truncated", `{"id":"abc","name":"Widget"`},
		{"array", `[]`},
		{"null", `null`},
		{"missing id", `{"name":"Widget","price":9.99}`},
		{"missing name", `{"id":"abc","price":9.99}`},
		{"missing price", `{"id":"abc","name":"Widget"}`},
		{"null price", `{"id":"abc","name":"Widget","price":null}`},
		{"string price", `{"id":"abc","name":"Widget","price":"9.99"}`},
		{"numeric id", `{"id":1,"name":"Widget","price":9.99}`},
		{"unknown key", `{"id":"abc","name":"Widget","price":9.99,"color":"red"}`},
		{"trailing data", `{"id":"abc","name":"Widget","price":9.99} {}`},
		{"upper-case keys", `{"ID":"abc","NAME":"Widget","PRICE":9.99}`},
		{"mixed-case key", `{"id":"abc","Name":"Widget","price":9.99}`},
		{"case-variant duplicate id", `{"id":"abc","Id":"xyz","name":"Widget","price":9.99}`},
		{"duplicate id", `{"id":"abc","id":"xyz","name":"Widget","price":9.99}`},
		{"null name", `{"id":"abc","name":null,"price":9.99}`},
		{"empty object", `{}`},
		{"string body", `"abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := product.Parse([]byte(tt.body))
			if !errors.Is(err, product.ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestProduct_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(product.Product{ID: "abc", Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"id":"abc","name":"Widget","price":9.99}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestNewList_NilBecomesEmptyArray(t *testing.T) {
	b, err := json.Marshal(product.NewList(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"products":[]}` {
		t.Errorf("expected empty products array, got %s", b)
	}
}

func TestNewList_Envelope(t *testing.T) {
	list := product.NewList([]product.Product{
		{ID: "a", Name: "A", Price: 1},
		{ID: "b", Name: "B", Price: 2.5},
	})
	b, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"products":[{"id":"a","name":"A","price":1},{"id":"b","name":"B","price":2.5}]}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}
