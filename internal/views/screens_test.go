package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func plain(s string) string { return ansi.Strip(s) }

func TestMainRendersCardsAndCartCount(t *testing.T) {
	t.Parallel()

	out := plain(Main(MainVM{
		Cards: []CardVM{
			{ID: "a", Title: "Rubber duck", Category: "soft-skill", Price: "750 syn"},
			{ID: "b", Title: "Golden linter", Category: "hard-skill", Price: "Priceless"},
		},
		CartCount: 2,
	}, 80))

	require.Contains(t, out, "LAREK")
	require.Contains(t, out, "cart: 2")
	require.Contains(t, out, "Rubber duck")
	require.Contains(t, out, "750 syn")
	require.Contains(t, out, "Priceless")
}

func TestMainEmptyCatalog(t *testing.T) {
	t.Parallel()
	out := plain(Main(MainVM{}, 80))
	require.Contains(t, out, "Nothing here.")
}

func TestPreviewButtonLabelFollowsState(t *testing.T) {
	t.Parallel()

	vm := CardVM{Title: "Rubber duck", Category: "soft-skill", Price: "750 syn", Purchasable: true}
	require.Contains(t, plain(Preview(vm)), "Add to cart")

	vm.InCart = true
	require.Contains(t, plain(Preview(vm)), "Remove from cart")

	vm = CardVM{Title: "Golden linter", Price: "Priceless", Purchasable: false}
	require.Contains(t, plain(Preview(vm)), "Not for sale")
}

func TestBasketRendersIndexedLinesAndTotal(t *testing.T) {
	t.Parallel()

	out := plain(Basket(BasketVM{
		Lines: []BasketLineVM{
			{Index: 1, Title: "Rubber duck", Price: "750 syn"},
			{Index: 2, Title: "Mentor hour", Price: "900 syn"},
		},
		Total:       "1650 syn",
		CanCheckout: true,
	}))

	require.Contains(t, out, "1. Rubber duck")
	require.Contains(t, out, "2. Mentor hour")
	require.Contains(t, out, "Total: ")
	require.Contains(t, out, "1650 syn")
}

func TestBasketEmpty(t *testing.T) {
	t.Parallel()
	out := plain(Basket(BasketVM{Total: "0 syn"}))
	require.Contains(t, out, "Basket is empty")
}

func TestOrderFormShowsErrors(t *testing.T) {
	t.Parallel()

	out := plain(OrderForm(OrderFormVM{
		AddressField: "<address input>",
		Errors: map[string]string{
			"payment": "Choose a payment method",
			"address": "Enter a delivery address",
		},
	}))
	require.Contains(t, out, "Choose a payment method")
	require.Contains(t, out, "Enter a delivery address")
}

func TestContactsShowsErrors(t *testing.T) {
	t.Parallel()

	out := plain(Contacts(ContactsVM{
		EmailField: "<email input>",
		PhoneField: "<phone input>",
		Errors:     map[string]string{"email": "Enter an email"},
	}))
	require.Contains(t, out, "Enter an email")
	require.NotContains(t, out, "Enter a phone number")
}

func TestSuccessShowsTotal(t *testing.T) {
	t.Parallel()
	out := plain(Success(SuccessVM{Total: "1650 syn"}))
	require.Contains(t, out, "Order placed")
	require.Contains(t, out, "Written off: ")
	require.Contains(t, out, "1650 syn")
}

func TestOverlayKeepsBaseAroundModal(t *testing.T) {
	t.Parallel()

	base := strings.Repeat(strings.Repeat("#", 40)+"\n", 9) + strings.Repeat("#", 40)
	out := Overlay(base, "MODAL", 40, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	require.Contains(t, plain(out), "MODAL")
	require.True(t, strings.HasPrefix(plain(lines[0]), "#"), "base must stay visible above the modal")
}
