package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Limits holds the validation bounds applied to every product. One immutable
// value is handed to the store at construction and reused for every check.
type Limits struct {
	NameMinLen int
	NameMaxLen int
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	MinStock   int
	MaxStock   int
}

// DefaultLimits returns the standard product constraints.
func DefaultLimits() Limits {
	return Limits{
		NameMinLen: 1,
		NameMaxLen: 50,
		MinPrice:   decimal.Zero,
		MaxPrice:   decimal.RequireFromString("999999.99"),
		MinStock:   0,
		MaxStock:   99999,
	}
}

// Product represents a product entity in the inventory system. A Product is
// never observable in an invalid state: NewProduct and Apply validate before
// committing any field.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// NewProduct builds a validated product. The name is stored exactly as given;
// only a trimmed copy is length-checked.
func NewProduct(name string, price decimal.Decimal, stock int, l Limits) (Product, error) {
	p := Product{Name: name, Price: price, Stock: stock}
	if err := p.validate(l); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) validate(l Limits) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(p.Name)); n < l.NameMinLen || n > l.NameMaxLen {
		return &ValidationError{
			Field:       "name",
			Description: fmt.Sprintf("name must be between %d and %d characters", l.NameMinLen, l.NameMaxLen),
		}
	}
	if p.Price.LessThan(l.MinPrice) || p.Price.GreaterThan(l.MaxPrice) {
		return &ValidationError{
			Field:       "price",
			Description: fmt.Sprintf("price must be between %s and %s", l.MinPrice, l.MaxPrice),
		}
	}
	if p.Stock < l.MinStock || p.Stock > l.MaxStock {
		return &ValidationError{
			Field:       "stock",
			Description: fmt.Sprintf("stock must be between %d and %d", l.MinStock, l.MaxStock),
		}
	}
	return nil
}

// ProductUpdate carries optional new field values for Apply. A nil field
// keeps the current value.
type ProductUpdate struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

// Apply stages the update on a copy, re-validates the whole staged product
// and commits all fields together. On failure the receiver is unchanged.
func (p *Product) Apply(u ProductUpdate, l Limits) error {
	staged := *p
	if u.Name != nil {
		staged.Name = *u.Name
	}
	if u.Price != nil {
		staged.Price = *u.Price
	}
	if u.Stock != nil {
		staged.Stock = *u.Stock
	}
	if err := staged.validate(l); err != nil {
		return err
	}
	*p = staged
	return nil
}
