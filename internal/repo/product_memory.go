package repo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// InMemoryProductRepository is the in-memory implementation of Inventory.
// Entries are kept in insertion order. The store is exclusively owned by the
// single session driving it, so no locking is involved; every mutation is
// atomic with respect to validation failure.
type InMemoryProductRepository struct {
	limits  models.Limits
	entries []Entry
}

var _ Inventory = (*InMemoryProductRepository)(nil)

// NewInMemoryProductRepository creates an empty store validating against l.
func NewInMemoryProductRepository(l models.Limits) *InMemoryProductRepository {
	return &InMemoryProductRepository{limits: l}
}

// NewSeededProductRepository creates a store populated from seed. Ids are
// loaded in ascending order so List output is deterministic. A seed whose
// maps disagree on keys, or whose values fail product validation, is
// rejected the same way Add rejects bad input.
func NewSeededProductRepository(l models.Limits, seed Seed) (*InMemoryProductRepository, error) {
	if len(seed.Prices) != len(seed.Names) || len(seed.Stocks) != len(seed.Names) {
		return nil, &models.ValidationError{Field: "seed", Description: "seed maps must share the same ids"}
	}

	ids := make([]ProductID, 0, len(seed.Names))
	for id := range seed.Names {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	r := NewInMemoryProductRepository(l)
	for _, id := range ids {
		price, ok := seed.Prices[id]
		if !ok {
			return nil, &models.ValidationError{Field: "seed", Description: fmt.Sprintf("seed has no price for id %d", id)}
		}
		stock, ok := seed.Stocks[id]
		if !ok {
			return nil, &models.ValidationError{Field: "seed", Description: fmt.Sprintf("seed has no stock for id %d", id)}
		}
		p, err := models.NewProduct(seed.Names[id], decimal.NewFromFloat(price), stock, l)
		if err != nil {
			return nil, err
		}
		r.entries = append(r.entries, Entry{ID: id, Product: p})
	}
	return r, nil
}

// List returns a copy of all entries in insertion order.
func (r *InMemoryProductRepository) List() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Add parses and validates the raw inputs, then inserts the product under
// the next identifier. Nothing is inserted when any step fails.
func (r *InMemoryProductRepository) Add(name, priceText, stockText string) (ProductID, error) {
	price, err := parsePrice(priceText)
	if err != nil {
		return 0, err
	}
	stock, err := parseStock(stockText)
	if err != nil {
		return 0, err
	}
	p, err := models.NewProduct(name, price, stock, r.limits)
	if err != nil {
		return 0, err
	}

	id := r.nextID()
	r.entries = append(r.entries, Entry{ID: id, Product: p})
	return id, nil
}

// Delete removes the product under id.
func (r *InMemoryProductRepository) Delete(id ProductID) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Update applies the provided raw field texts to the product under id.
// Empty strings keep the current values; all staged changes are validated
// together and committed all-or-nothing.
func (r *InMemoryProductRepository) Update(id ProductID, name, priceText, stockText string) error {
	idx := -1
	for i, e := range r.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProductNotFound
	}

	var u models.ProductUpdate
	if name != "" {
		u.Name = &name
	}
	if priceText != "" {
		price, err := parsePrice(priceText)
		if err != nil {
			return err
		}
		u.Price = &price
	}
	if stockText != "" {
		stock, err := parseStock(stockText)
		if err != nil {
			return err
		}
		u.Stock = &stock
	}
	return r.entries[idx].Product.Apply(u, r.limits)
}

// Serialize returns a flat snapshot of the current state, in the same shape
// a seed is given. Prices are exported as floats.
func (r *InMemoryProductRepository) Serialize() Snapshot {
	s := Snapshot{
		Names:  make(map[ProductID]string, len(r.entries)),
		Prices: make(map[ProductID]float64, len(r.entries)),
		Stocks: make(map[ProductID]int, len(r.entries)),
	}
	for _, e := range r.entries {
		s.Names[e.ID] = e.Product.Name
		s.Prices[e.ID] = e.Product.Price.InexactFloat64()
		s.Stocks[e.ID] = e.Product.Stock
	}
	return s
}

func (r *InMemoryProductRepository) nextID() ProductID {
	max := 0
	for _, e := range r.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// parsePrice converts raw price text to a decimal. The parse-time floor of
// zero applies in addition to the stored-field minimum.
func parsePrice(text string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, &models.ValidationError{Field: "price", Description: "invalid price"}
	}
	return price, nil
}

func parseStock(text string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || stock < 0 {
		return 0, &models.ValidationError{Field: "stock", Description: "invalid stock"}
	}
	return stock, nil
}
