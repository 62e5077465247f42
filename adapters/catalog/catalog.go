// Package catalog resolves SKU references to list prices.
// The engine itself only ever sees resolved list prices; the catalog is the
// collaborator that supplies them.
package catalog

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"quote-engine/internal/errors"
)

// Item is one catalog entry
type Item struct {
	// SKU is the unique item reference
	SKU string `json:"sku"`

	// Description is a human-readable label
	Description string `json:"description,omitempty"`

	// ListPrice is the undiscounted monthly unit price
	ListPrice decimal.Decimal `json:"list_price"`
}

// Catalog is a validated SKU registry, built once at load time
type Catalog struct {
	items map[string]Item
}

type catalogFile struct {
	Items []Item `json:"items"`
}

// Load reads a catalog from a JSON file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read catalog", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Parsing("decode catalog", err)
	}
	return New(file.Items)
}

// New builds a catalog from items, rejecting duplicates and non-positive
// prices.
func New(items []Item) (*Catalog, error) {
	catalog := &Catalog{items: make(map[string]Item, len(items))}
	for _, item := range items {
		if item.SKU == "" {
			return nil, errors.Config("catalog item with empty SKU")
		}
		if _, exists := catalog.items[item.SKU]; exists {
			return nil, errors.Configf("duplicate catalog SKU %q", item.SKU)
		}
		if item.ListPrice.LessThanOrEqual(decimal.Zero) {
			return nil, errors.Configf("catalog SKU %q: non-positive list price %s", item.SKU, item.ListPrice)
		}
		catalog.items[item.SKU] = item
	}
	return catalog, nil
}

// Resolve returns the list price for a SKU
func (c *Catalog) Resolve(sku string) (decimal.Decimal, error) {
	item, ok := c.items[sku]
	if !ok {
		return decimal.Zero, errors.NotFound("SKU", sku)
	}
	return item.ListPrice, nil
}

// Len returns the number of catalog items
func (c *Catalog) Len() int {
	return len(c.items)
}
