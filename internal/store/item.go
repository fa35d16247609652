package store

// Item is one catalog entry. A nil Price means the item is not
// purchasable; it can be previewed but never added to the cart.
// Items are immutable once loaded except by full catalog reload.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
}

// Purchasable reports whether the item can be carted.
func (i Item) Purchasable() bool { return i.Price != nil }

// Screen identifies the single active view. Exactly one is active at a
// time; transitions are caller-driven and never rejected here.
type Screen string

const (
	ScreenNone    Screen = ""
	ScreenBasket  Screen = "basket"
	ScreenPreview Screen = "cardPreview"
	ScreenOrder   Screen = "orderForm"
	ScreenSuccess Screen = "success"
)

// PaymentMethod is the closed set of accepted payment values.
type PaymentMethod string

const (
	PayOnline PaymentMethod = "online"
	PayCash   PaymentMethod = "cash"
)

// OrderField names one field of the order draft.
type OrderField string

const (
	FieldPayment OrderField = "payment"
	FieldAddress OrderField = "address"
	FieldEmail   OrderField = "email"
	FieldPhone   OrderField = "phone"
)

// Draft is the in-progress checkout form. Empty string means the field
// has not been given a usable value; validation treats it as unset.
type Draft struct {
	Payment PaymentMethod
	Address string
	Email   string
	Phone   string
}

// ---------------------------------------------------------------------------
// Bus payload variants, one per topic family
// ---------------------------------------------------------------------------

// CatalogChanged is published on wholesale catalog replacement.
type CatalogChanged struct {
	Items []Item
}

// PreviewOpen carries the item to preview.
type PreviewOpen struct {
	Item Item
}

// CartChanged is published whenever cart membership actually changes.
type CartChanged struct {
	IDs   []string
	Total float64
}

// FieldChange is the payload of the "order.*" / "contacts.*" pattern
// families: one variant covers every input field of a form.
type FieldChange struct {
	Field OrderField
	Value string
}

// ScreenUpdate announces that the active screen changed.
type ScreenUpdate struct {
	Screen Screen
}
