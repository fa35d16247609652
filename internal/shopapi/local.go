package shopapi

import (
	"context"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/larkhq/larek/internal/store"
)

// LocalSource serves the catalog from a TOML file and accepts orders
// without a network, so the app runs offline with the exact same flow.
// It verifies submitted totals the way a real backend would.
type LocalSource struct {
	items []store.Item
}

// catalogFile is the TOML shape of a local catalog.
type catalogFile struct {
	Item []localItem `toml:"item"`
}

type localItem struct {
	ID          string   `toml:"id"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Image       string   `toml:"image"`
	Category    string   `toml:"category"`
	Price       *float64 `toml:"price"` // omit for not-for-sale items
}

// NewLocalSource loads a catalog from path.
func NewLocalSource(path string) (*LocalSource, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("local catalog %s: %w", path, err)
	}
	if len(file.Item) == 0 {
		return nil, fmt.Errorf("local catalog %s: no items", path)
	}
	items := make([]store.Item, len(file.Item))
	for i, it := range file.Item {
		items[i] = store.Item{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Image:       it.Image,
			Category:    it.Category,
			Price:       it.Price,
		}
	}
	return &LocalSource{items: items}, nil
}

// NewLocalSourceFromItems builds a source around an in-memory catalog.
func NewLocalSourceFromItems(items []store.Item) *LocalSource {
	return &LocalSource{items: append([]store.Item(nil), items...)}
}

// GetCatalog returns the loaded catalog.
func (l *LocalSource) GetCatalog(_ context.Context) ([]store.Item, error) {
	return append([]store.Item(nil), l.items...), nil
}

// SubmitOrder validates the order against the catalog, recomputes the
// total, and mints a receipt.
func (l *LocalSource) SubmitOrder(_ context.Context, order Order) (Receipt, error) {
	if len(order.Items) == 0 {
		return Receipt{}, fmt.Errorf("submit order: empty cart")
	}
	byID := make(map[string]store.Item, len(l.items))
	for _, it := range l.items {
		byID[it.ID] = it
	}

	var total float64
	for _, id := range order.Items {
		it, ok := byID[id]
		if !ok {
			return Receipt{}, fmt.Errorf("submit order: unknown item %q", id)
		}
		if it.Price == nil {
			return Receipt{}, fmt.Errorf("submit order: item %q is not for sale", id)
		}
		total += *it.Price
	}
	if math.Abs(total-order.Total) > 1e-9 {
		return Receipt{}, fmt.Errorf("submit order: total mismatch: sent %v, priced %v", order.Total, total)
	}

	return Receipt{ID: uuid.NewString(), Total: total}, nil
}
