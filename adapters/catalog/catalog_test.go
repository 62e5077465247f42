package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"quote-engine/internal/errors"
)

func TestResolve(t *testing.T) {
	cat, err := New([]Item{
		{SKU: "APP-STD", ListPrice: decimal.RequireFromString("100.00")},
		{SKU: "APP-PRO", ListPrice: decimal.RequireFromString("250.00")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	price, err := cat.Resolve("APP-PRO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("250.00")) {
		t.Fatalf("price = %s, want 250.00", price)
	}
}

func TestResolveUnknownSKU(t *testing.T) {
	cat, err := New([]Item{{SKU: "APP-STD", ListPrice: decimal.NewFromInt(100)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cat.Resolve("APP-ULTRA"); !errors.IsType(err, errors.TypeNotFound) {
		t.Fatalf("want NOT_FOUND, got %v", err)
	}
}

func TestNewRejectsBadItems(t *testing.T) {
	cases := map[string][]Item{
		"empty SKU": {{SKU: "", ListPrice: decimal.NewFromInt(1)}},
		"duplicate SKU": {
			{SKU: "APP-STD", ListPrice: decimal.NewFromInt(1)},
			{SKU: "APP-STD", ListPrice: decimal.NewFromInt(2)},
		},
		"non-positive price": {{SKU: "APP-STD", ListPrice: decimal.Zero}},
	}

	for name, items := range cases {
		if _, err := New(items); !errors.IsType(err, errors.TypeConfig) {
			t.Errorf("%s: want CONFIG_ERROR, got %v", name, err)
		}
	}
}
