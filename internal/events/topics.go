package events

import "regexp"

// Topic names form two namespaces: exact topics for discrete events, and
// one pattern family per checkout form. Form-field topics look like
// "order.address" or "contacts.email"; a single OnMatch registration
// covers every input of a form.
const (
	TopicCatalogChanged = "catalog-changed"
	TopicPreviewOpen    = "preview-open"
	TopicCartChanged    = "cart-changed"
	TopicBasketOpen     = "basket-open"
	TopicOrderOpen      = "order-open"
	TopicContactsOpen   = "contacts-open"
	TopicOrderSubmit    = "order-submit"
	TopicContactsSubmit = "contacts-submit"
	TopicModalOpen      = "modal-open"
	TopicModalClose     = "modal-close"
	TopicScreenUpdate   = "screen-update"

	// Async collaborator results re-enter the bus on these topics so
	// promise-style completions never mutate state out of band.
	TopicCatalogFetched = "catalog-fetched"
	TopicOrderPlaced    = "order-placed"
)

// Pattern matchers for the per-field form families.
var (
	OrderFieldPattern    = regexp.MustCompile(`^order\.`)
	ContactsFieldPattern = regexp.MustCompile(`^contacts\.`)
)

// FieldTopic builds a form-family topic, e.g. FieldTopic("order", "address").
func FieldTopic(form, field string) string {
	return form + "." + field
}
