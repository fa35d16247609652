package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// View-models: each carries exactly the fields its screen displays.
// ---------------------------------------------------------------------------

// CardVM is one catalog card. Price arrives pre-formatted; a
// non-purchasable item carries its not-for-sale label here.
type CardVM struct {
	ID          string
	Title       string
	Description string
	Category    string
	Price       string
	InCart      bool
	Purchasable bool
}

// MainVM is the catalog screen.
type MainVM struct {
	Cards     []CardVM
	Cursor    int
	CartCount int
	Query     string
	Searching bool
	Status    string
	StatusErr bool
}

// BasketLineVM is one basket row with its 1-based index label.
type BasketLineVM struct {
	Index int
	Title string
	Price string
}

// BasketVM is the basket modal.
type BasketVM struct {
	Lines       []BasketLineVM
	Total       string
	Cursor      int
	CanCheckout bool
}

// OrderFormVM is the first checkout step: payment method + address.
type OrderFormVM struct {
	Payment      string // selected payment method, "" when unchosen
	AddressField string // rendered text input
	Errors       map[string]string
	CanSubmit    bool
}

// ContactsVM is the second checkout step: email + phone.
type ContactsVM struct {
	EmailField string // rendered text input
	PhoneField string // rendered text input
	Errors     map[string]string
	CanSubmit  bool
}

// SuccessVM is the order confirmation.
type SuccessVM struct {
	Total string
}

// ---------------------------------------------------------------------------
// Renderers
// ---------------------------------------------------------------------------

const cardWidth = 30

// Main renders the catalog grid with header and status line.
func Main(vm MainVM, width int) string {
	var b strings.Builder

	header := headerStyle.Render("LAREK") + "  " +
		mutedStyle.Render(fmt.Sprintf("cart: %d", vm.CartCount))
	if vm.Searching {
		header += "  " + titleStyle.Render("/"+vm.Query+"▌")
	} else if vm.Query != "" {
		header += "  " + mutedStyle.Render("filter: "+vm.Query)
	}
	b.WriteString(header + "\n\n")

	if len(vm.Cards) == 0 {
		b.WriteString(mutedStyle.Render("Nothing here.") + "\n")
	} else {
		b.WriteString(cardGrid(vm, width))
	}

	if vm.Status != "" {
		b.WriteString("\n")
		if vm.StatusErr {
			b.WriteString(errorStyle.Render(vm.Status))
		} else {
			b.WriteString(mutedStyle.Render(vm.Status))
		}
	}
	return b.String()
}

func cardGrid(vm MainVM, width int) string {
	cols := width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(vm.Cards); start += cols {
		end := start + cols
		if end > len(vm.Cards) {
			end = len(vm.Cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, card(vm.Cards[i], i == vm.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func card(vm CardVM, focused bool) string {
	style := cardStyle
	if focused {
		style = focusCard
	}
	title := ansi.Truncate(vm.Title, cardWidth-2, "…")
	price := priceStyle.Render(vm.Price)
	if vm.InCart {
		price += " " + successStyle.Render("✓")
	}
	body := CategoryBadge(vm.Category) + "\n" +
		titleStyle.Render(title) + "\n" +
		price
	return style.Width(cardWidth).Render(body)
}

// Preview renders the expanded item card.
func Preview(vm CardVM) string {
	var b strings.Builder
	b.WriteString(CategoryBadge(vm.Category) + "\n\n")
	b.WriteString(titleStyle.Render(vm.Title) + "\n")
	if vm.Description != "" {
		b.WriteString(mutedStyle.Render(vm.Description) + "\n")
	}
	b.WriteString("\n" + priceStyle.Render(vm.Price) + "\n\n")

	switch {
	case !vm.Purchasable:
		b.WriteString(buttonOff.Render("Not for sale"))
	case vm.InCart:
		b.WriteString(buttonStyle.Render("Remove from cart"))
	default:
		b.WriteString(buttonStyle.Render("Add to cart"))
	}
	b.WriteString("\n\n" + mutedStyle.Render("enter toggle · esc close"))
	return b.String()
}

// Basket renders the cart modal.
func Basket(vm BasketVM) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Basket") + "\n\n")

	if len(vm.Lines) == 0 {
		b.WriteString(mutedStyle.Render("Basket is empty") + "\n")
	}
	for i, line := range vm.Lines {
		row := fmt.Sprintf("%d. %s  %s", line.Index, line.Title, priceStyle.Render(line.Price))
		if i == vm.Cursor {
			row = selectedStyle.Render(fmt.Sprintf("%d. %s  %s", line.Index, line.Title, line.Price))
		}
		b.WriteString(row + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Total: ") + priceStyle.Render(vm.Total) + "\n\n")
	if vm.CanCheckout {
		b.WriteString(buttonStyle.Render("Checkout"))
	} else {
		b.WriteString(buttonOff.Render("Checkout"))
	}
	b.WriteString("\n\n" + mutedStyle.Render("x remove · enter checkout · esc close"))
	return b.String()
}

// OrderForm renders the payment/address step.
func OrderForm(vm OrderFormVM) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Payment & delivery") + "\n\n")

	online := buttonOff.Render("Online")
	cash := buttonOff.Render("On delivery")
	switch vm.Payment {
	case "online":
		online = buttonStyle.Render("Online")
	case "cash":
		cash = buttonStyle.Render("On delivery")
	}
	b.WriteString(online + " " + cash + "\n")
	if msg, ok := vm.Errors["payment"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Address") + "\n")
	b.WriteString(vm.AddressField + "\n")
	if msg, ok := vm.Errors["address"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n")
	if vm.CanSubmit {
		b.WriteString(buttonStyle.Render("Next"))
	} else {
		b.WriteString(buttonOff.Render("Next"))
	}
	b.WriteString("\n\n" + mutedStyle.Render("tab payment · enter next · esc close"))
	return b.String()
}

// Contacts renders the email/phone step.
func Contacts(vm ContactsVM) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Contacts") + "\n\n")

	b.WriteString(titleStyle.Render("Email") + "\n")
	b.WriteString(vm.EmailField + "\n")
	if msg, ok := vm.Errors["email"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Phone") + "\n")
	b.WriteString(vm.PhoneField + "\n")
	if msg, ok := vm.Errors["phone"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n")
	if vm.CanSubmit {
		b.WriteString(buttonStyle.Render("Pay"))
	} else {
		b.WriteString(buttonOff.Render("Pay"))
	}
	b.WriteString("\n\n" + mutedStyle.Render("tab switch field · enter pay · esc close"))
	return b.String()
}

// Success renders the order confirmation.
func Success(vm SuccessVM) string {
	var b strings.Builder
	b.WriteString(successStyle.Render("Order placed") + "\n\n")
	b.WriteString(titleStyle.Render("Written off: ") + priceStyle.Render(vm.Total) + "\n\n")
	b.WriteString(buttonStyle.Render("Back to shopping"))
	b.WriteString("\n\n" + mutedStyle.Render("enter close"))
	return b.String()
}
