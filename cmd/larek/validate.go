package main

import (
	"context"
	"fmt"
	"io"

	"github.com/larkhq/larek/internal/config"
	"github.com/larkhq/larek/internal/events"
	"github.com/larkhq/larek/internal/shopapi"
	"github.com/larkhq/larek/internal/store"
)

// runStartupHarness exercises the full bus/store/source flow without a
// terminal: load catalog, cart an item, fill the draft, submit. It is
// the smoke check behind the --validate flag.
func runStartupHarness(out io.Writer, cfg config.Config) error {
	bus := events.New()
	st := store.New(bus, store.Labels{
		Currency:   cfg.UI.Currency,
		NotForSale: cfg.UI.NotForSale,
	})
	source := shopapi.NewLocalSourceFromItems(demoCatalog())

	var cartEvents int
	bus.On(events.TopicCartChanged, func(any) { cartEvents++ })

	items, err := source.GetCatalog(context.Background())
	if err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}
	st.LoadCatalog(items)
	if len(st.Catalog()) != len(items) {
		return fmt.Errorf("catalog size = %d, want %d", len(st.Catalog()), len(items))
	}

	var target store.Item
	for _, it := range items {
		if it.Purchasable() {
			target = it
			break
		}
	}
	if target.ID == "" {
		return fmt.Errorf("demo catalog has no purchasable item")
	}
	if err := st.AddToCart(target.ID); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	if cartEvents != 1 {
		return fmt.Errorf("cart-changed emissions = %d, want 1", cartEvents)
	}

	for field, value := range map[store.OrderField]string{
		store.FieldPayment: string(store.PayOnline),
		store.FieldAddress: "Validation Lane 1",
		store.FieldEmail:   "check@example.com",
		store.FieldPhone:   "+7 000 000 00 00",
	} {
		if err := st.SetOrderField(field, value); err != nil {
			return fmt.Errorf("set %s: %w", field, err)
		}
	}
	if errs := st.ValidateOrder(); len(errs) != 0 {
		return fmt.Errorf("draft should validate, got %v", errs)
	}

	receipt, err := source.SubmitOrder(context.Background(), shopapi.Order{
		Payment: string(store.PayOnline),
		Address: "Validation Lane 1",
		Email:   "check@example.com",
		Phone:   "+7 000 000 00 00",
		Items:   st.CartIDs(),
		Total:   st.Total(),
	})
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}
	if receipt.Total != st.Total() {
		return fmt.Errorf("receipt total = %v, want %v", receipt.Total, st.Total())
	}

	fmt.Fprintf(out, "startup_status_err=false items=%d order=%s total=%v\n",
		len(items), receipt.ID, receipt.Total)
	return nil
}
