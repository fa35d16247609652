// Package store holds all mutable application state: the loaded catalog,
// cart membership, the in-progress order draft, and the active screen.
// Every mutation announces itself on the event bus; reads are plain
// method calls. Nothing here touches rendering or I/O.
package store

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/larkhq/larek/internal/events"
)

var (
	// ErrNotFound reports a lookup for an id the catalog does not know.
	ErrNotFound = errors.New("item not found")
	// ErrNotForSale reports an attempt to cart a priceless item.
	ErrNotForSale = errors.New("item is not for sale")
	// ErrBadPayment reports a payment value outside the accepted set.
	ErrBadPayment = errors.New("unknown payment method")
)

// announcer is the reactive base: it knows the bus and nothing else.
// Field writes are plain assignments; announcing a change is always an
// explicit EmitChanges call, so callers batch writes before one emit.
type announcer struct {
	bus *events.Bus
}

// EmitChanges publishes topic on the bus. A nil payload becomes an empty
// struct on the bus side.
func (a *announcer) EmitChanges(topic string, payload any) {
	a.bus.Emit(topic, payload)
}

// Labels configures presentation strings the store formats with.
type Labels struct {
	Currency   string // suffix after a price, e.g. "syn"
	NotForSale string // shown for a nil price
}

// Store owns the session state. Construct with New; the zero value has no
// bus and will panic on first mutation.
type Store struct {
	announcer

	catalog []Item
	byID    map[string]Item
	cart    []string // insertion order = display order
	inCart  map[string]bool
	preview *Item
	draft   Draft
	screen  Screen
	labels  Labels
}

// New constructs an empty store bound to bus. Catalog, cart and draft
// start empty; the active screen starts as ScreenNone.
func New(bus *events.Bus, labels Labels) *Store {
	if labels.Currency == "" {
		labels.Currency = "syn"
	}
	if labels.NotForSale == "" {
		labels.NotForSale = "Priceless"
	}
	return &Store{
		announcer: announcer{bus: bus},
		byID:      make(map[string]Item),
		inCart:    make(map[string]bool),
		labels:    labels,
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// LoadCatalog replaces the catalog wholesale and emits catalog-changed.
// Cart entries whose id vanished from the new catalog are dropped so cart
// ids stay a subset of catalog ids.
func (s *Store) LoadCatalog(items []Item) {
	s.catalog = append([]Item(nil), items...)
	s.byID = make(map[string]Item, len(items))
	for _, it := range items {
		s.byID[it.ID] = it
	}

	kept := s.cart[:0]
	for _, id := range s.cart {
		if _, ok := s.byID[id]; ok {
			kept = append(kept, id)
		} else {
			delete(s.inCart, id)
		}
	}
	s.cart = kept

	s.EmitChanges(events.TopicCatalogChanged, CatalogChanged{Items: s.Catalog()})
}

// Catalog returns the loaded items in display order.
func (s *Store) Catalog() []Item {
	return append([]Item(nil), s.catalog...)
}

// ItemByID looks an item up, returning ErrNotFound for unknown ids.
func (s *Store) ItemByID(id string) (Item, error) {
	it, ok := s.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("catalog %q: %w", id, ErrNotFound)
	}
	return it, nil
}

// SetPreview records the currently previewed item and emits preview-open.
func (s *Store) SetPreview(item Item) {
	it := item
	s.preview = &it
	s.EmitChanges(events.TopicPreviewOpen, PreviewOpen{Item: it})
}

// Preview returns the previewed item, ok=false when nothing is previewed.
func (s *Store) Preview() (Item, bool) {
	if s.preview == nil {
		return Item{}, false
	}
	return *s.preview, true
}

// ---------------------------------------------------------------------------
// Cart
// ---------------------------------------------------------------------------

// AddToCart adds id to the cart. Adding an id already present is a no-op.
// Unknown ids and priceless items are rejected. Emits cart-changed only
// when membership actually changed.
func (s *Store) AddToCart(id string) error {
	it, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("add to cart %q: %w", id, ErrNotFound)
	}
	if !it.Purchasable() {
		return fmt.Errorf("add to cart %q: %w", id, ErrNotForSale)
	}
	if s.inCart[id] {
		return nil
	}
	s.cart = append(s.cart, id)
	s.inCart[id] = true
	s.EmitChanges(events.TopicCartChanged, CartChanged{IDs: s.CartIDs(), Total: s.Total()})
	return nil
}

// RemoveFromCart removes id; absent ids are a no-op. Emits cart-changed
// only when membership actually changed.
func (s *Store) RemoveFromCart(id string) {
	if !s.inCart[id] {
		return
	}
	delete(s.inCart, id)
	for i, cid := range s.cart {
		if cid == id {
			s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
			break
		}
	}
	s.EmitChanges(events.TopicCartChanged, CartChanged{IDs: s.CartIDs(), Total: s.Total()})
}

// InCart reports cart membership.
func (s *Store) InCart(id string) bool { return s.inCart[id] }

// CartIDs returns cart ids in insertion order.
func (s *Store) CartIDs() []string {
	return append([]string(nil), s.cart...)
}

// CartCount returns the number of carted items.
func (s *Store) CartCount() int { return len(s.cart) }

// Total sums the prices of carted items. Priceless items never reach the
// cart, so the nil check is an integrity guard, not a branch in use.
func (s *Store) Total() float64 {
	var total float64
	for _, id := range s.cart {
		if it, ok := s.byID[id]; ok && it.Price != nil {
			total += *it.Price
		}
	}
	return total
}

// ClearCart empties the cart. Emits nothing; the screen handlers that
// call it re-render explicitly.
func (s *Store) ClearCart() {
	s.cart = nil
	s.inCart = make(map[string]bool)
}

// ---------------------------------------------------------------------------
// Order draft
// ---------------------------------------------------------------------------

// SetOrderField sets one draft field. Payment values outside the accepted
// set return ErrBadPayment. An OrderField outside the known set is a
// programmer error and panics.
func (s *Store) SetOrderField(field OrderField, value string) error {
	switch field {
	case FieldPayment:
		switch PaymentMethod(value) {
		case PayOnline, PayCash:
			s.draft.Payment = PaymentMethod(value)
		case "":
			s.draft.Payment = ""
		default:
			return fmt.Errorf("payment %q: %w", value, ErrBadPayment)
		}
	case FieldAddress:
		s.draft.Address = value
	case FieldEmail:
		s.draft.Email = value
	case FieldPhone:
		s.draft.Phone = value
	default:
		panic(fmt.Sprintf("store: unknown order field %q", field))
	}
	return nil
}

// OrderDraft returns a snapshot of the in-progress checkout form.
func (s *Store) OrderDraft() Draft { return s.draft }

// ClearOrderDraft wipes the checkout form. Emits nothing.
func (s *Store) ClearOrderDraft() { s.draft = Draft{} }

// ---------------------------------------------------------------------------
// Screen
// ---------------------------------------------------------------------------

// SetScreen stores the active screen. Entering the basket always wipes
// any in-progress checkout draft, so a draft never leaks across a
// re-entered checkout. No other transition has side effects and none is
// rejected; transitions are caller-driven.
func (s *Store) SetScreen(screen Screen) {
	if screen == ScreenBasket {
		s.ClearOrderDraft()
	}
	s.screen = screen
}

// Screen returns the active screen.
func (s *Store) Screen() Screen { return s.screen }

// ---------------------------------------------------------------------------
// Formatting
// ---------------------------------------------------------------------------

// FormatPrice renders a price with the configured currency label. A nil
// price maps to the not-for-sale label, never to "0".
func (s *Store) FormatPrice(p *float64) string {
	if p == nil {
		return s.labels.NotForSale
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + " " + s.labels.Currency
}
