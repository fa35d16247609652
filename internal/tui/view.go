package tui

import (
	"github.com/larkhq/larek/internal/store"
	"github.com/larkhq/larek/internal/views"
)

// View re-queries the store and feeds plain view-models into the
// renderers. Renderers never see the store or the bus.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading…"
	}

	base := views.Main(a.mainVM(), a.width)

	switch a.store.Screen() {
	case store.ScreenPreview:
		item, ok := a.store.Preview()
		if !ok {
			return base
		}
		return views.Overlay(base, views.Preview(a.cardVM(item)), a.width, a.height)
	case store.ScreenBasket:
		return views.Overlay(base, views.Basket(a.basketVM()), a.width, a.height)
	case store.ScreenOrder:
		if a.step == stepOrderInfo {
			return views.Overlay(base, views.OrderForm(a.orderFormVM()), a.width, a.height)
		}
		return views.Overlay(base, views.Contacts(a.contactsVM()), a.width, a.height)
	case store.ScreenSuccess:
		return views.Overlay(base, views.Success(views.SuccessVM{Total: a.lastTotal}), a.width, a.height)
	}
	return base
}

func (a *App) cardVM(item store.Item) views.CardVM {
	return views.CardVM{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Price:       a.store.FormatPrice(item.Price),
		InCart:      a.store.InCart(item.ID),
		Purchasable: item.Purchasable(),
	}
}

func (a *App) mainVM() views.MainVM {
	items := a.store.Search(a.query)
	cards := make([]views.CardVM, len(items))
	for i, it := range items {
		cards[i] = a.cardVM(it)
	}
	return views.MainVM{
		Cards:     cards,
		Cursor:    a.cursor,
		CartCount: a.store.CartCount(),
		Query:     a.query,
		Searching: a.searching,
		Status:    a.status,
		StatusErr: a.statusErr,
	}
}

func (a *App) basketVM() views.BasketVM {
	ids := a.store.CartIDs()
	lines := make([]views.BasketLineVM, 0, len(ids))
	for i, id := range ids {
		item, err := a.store.ItemByID(id)
		if err != nil {
			continue // integrity guard; cart ids are a subset of catalog ids
		}
		lines = append(lines, views.BasketLineVM{
			Index: i + 1,
			Title: item.Title,
			Price: a.store.FormatPrice(item.Price),
		})
	}
	total := a.store.Total()
	return views.BasketVM{
		Lines:       lines,
		Total:       a.store.FormatPrice(&total),
		Cursor:      a.basketCursor,
		CanCheckout: len(lines) > 0,
	}
}

func (a *App) orderFormVM() views.OrderFormVM {
	errs := a.store.ValidateOrderInfo()
	return views.OrderFormVM{
		Payment:      string(a.store.OrderDraft().Payment),
		AddressField: a.address.View(),
		Errors:       fieldErrors(errs),
		CanSubmit:    len(errs) == 0,
	}
}

func (a *App) contactsVM() views.ContactsVM {
	errs := a.store.ValidateContacts()
	return views.ContactsVM{
		EmailField: a.email.View(),
		PhoneField: a.phone.View(),
		Errors:     fieldErrors(errs),
		CanSubmit:  len(errs) == 0,
	}
}

func fieldErrors(errs map[store.OrderField]string) map[string]string {
	out := make(map[string]string, len(errs))
	for f, msg := range errs {
		out[string(f)] = msg
	}
	return out
}
