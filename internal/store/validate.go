package store

// Validation is presence-based and recomputed on demand, never cached.
// The four draft fields split into two independent groups matching the
// two checkout screens: {payment, address} and {email, phone}. A field
// missing from the returned map is valid.

const (
	msgPaymentRequired = "Choose a payment method"
	msgAddressRequired = "Enter a delivery address"
	msgEmailRequired   = "Enter an email"
	msgPhoneRequired   = "Enter a phone number"
)

// ValidateOrder validates the whole draft: the union of both groups.
// It never fails; an empty map means the draft is ready to submit.
func (s *Store) ValidateOrder() map[OrderField]string {
	errs := s.ValidateOrderInfo()
	for f, msg := range s.ValidateContacts() {
		errs[f] = msg
	}
	return errs
}

// ValidateOrderInfo validates the payment/address group shown on the
// first checkout screen.
func (s *Store) ValidateOrderInfo() map[OrderField]string {
	errs := make(map[OrderField]string)
	if s.draft.Payment == "" {
		errs[FieldPayment] = msgPaymentRequired
	}
	if s.draft.Address == "" {
		errs[FieldAddress] = msgAddressRequired
	}
	return errs
}

// ValidateContacts validates the email/phone group shown on the second
// checkout screen.
func (s *Store) ValidateContacts() map[OrderField]string {
	errs := make(map[OrderField]string)
	if s.draft.Email == "" {
		errs[FieldEmail] = msgEmailRequired
	}
	if s.draft.Phone == "" {
		errs[FieldPhone] = msgPhoneRequired
	}
	return errs
}
