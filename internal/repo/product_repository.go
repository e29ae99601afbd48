package repo

import (
	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// ProductID identifies a product within a session. Ids are positive and
// assigned as max(existing ids)+1, so an id freed below the current maximum
// is never handed out again.
type ProductID = int

// Entry pairs a product with its identifier.
type Entry struct {
	ID      ProductID
	Product models.Product
}

// Seed is the flat three-mapping shape the store is populated from at
// startup. All three maps must share the same key set.
type Seed struct {
	Names  map[ProductID]string
	Prices map[ProductID]float64
	Stocks map[ProductID]int
}

// Snapshot is what Serialize returns; it has the seed shape so a serialized
// store can be loaded back as-is.
type Snapshot = Seed

// Inventory defines the interface for product store operations.
type Inventory interface {
	// List returns all entries in insertion order.
	List() []Entry

	// Add parses the raw price and stock texts, validates the new product
	// and inserts it under the next identifier, which it returns.
	Add(name, priceText, stockText string) (ProductID, error)

	// Delete removes the product under id.
	// Returns ErrProductNotFound if no product exists with the given id.
	Delete(id ProductID) error

	// Update applies the provided raw field texts to the product under id;
	// empty strings keep the current values. Any parse or validation
	// failure aborts the whole update with no partial change.
	Update(id ProductID, name, priceText, stockText string) error

	// Serialize returns a snapshot of the current state.
	Serialize() Snapshot
}

// ErrProductNotFound is returned when a product is not found in the store.
var ErrProductNotFound = &models.ValidationError{Field: "id", Description: "id not found"}
