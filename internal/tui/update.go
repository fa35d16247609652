package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/larkhq/larek/internal/events"
	"github.com/larkhq/larek/internal/store"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case catalogFetchedMsg:
		if msg.err != nil {
			a.fetchErr = true
			a.setError(fmt.Sprintf("Catalog load failed: %v — press r to retry", msg.err))
			return a, nil
		}
		a.fetchErr = false
		a.bus.Emit(events.TopicCatalogFetched, msg.items)
		a.setStatus(fmt.Sprintf("Loaded %d items", len(msg.items)))
		return a, nil

	case orderPlacedMsg:
		if msg.err != nil {
			// A failed submit never transitions to success; the contacts
			// form stays open for another attempt.
			a.setError(fmt.Sprintf("Order failed: %v", msg.err))
			return a, nil
		}
		a.bus.Emit(events.TopicOrderPlaced, msg.receipt)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey routes a key press to the active screen's handler, then
// flushes any order submission a bus handler queued up.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.store.Screen() {
	case store.ScreenNone:
		cmd = a.updateMain(msg)
	case store.ScreenPreview:
		cmd = a.updatePreview(msg)
	case store.ScreenBasket:
		cmd = a.updateBasket(msg)
	case store.ScreenOrder:
		if a.step == stepOrderInfo {
			cmd = a.updateOrderForm(msg)
		} else {
			cmd = a.updateContacts(msg)
		}
	case store.ScreenSuccess:
		cmd = a.updateSuccess(msg)
	}

	if a.pendingOrder != nil {
		order := *a.pendingOrder
		a.pendingOrder = nil
		return a, tea.Batch(cmd, submitOrderCmd(a.source, order))
	}
	return a, cmd
}

func (a *App) updateMain(msg tea.KeyMsg) tea.Cmd {
	if a.searching {
		switch msg.Type {
		case tea.KeyEsc:
			a.searching = false
			a.query = ""
			a.clampCursor()
		case tea.KeyEnter:
			a.searching = false
		case tea.KeyBackspace:
			if len(a.query) > 0 {
				a.query = a.query[:len(a.query)-1]
				a.clampCursor()
			}
		case tea.KeySpace:
			a.query += " "
			a.clampCursor()
		case tea.KeyRunes:
			a.query += string(msg.Runes)
			a.clampCursor()
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.setStatus("")
	case key.Matches(msg, a.keys.Basket):
		a.openBasket(nil)
	case key.Matches(msg, a.keys.Retry):
		if a.fetchErr {
			a.setStatus("Retrying…")
			return fetchCatalogCmd(a.source)
		}
	case key.Matches(msg, a.keys.Left):
		a.cursor--
		a.clampCursor()
	case key.Matches(msg, a.keys.Right), key.Matches(msg, a.keys.Down):
		a.cursor++
		a.clampCursor()
	case key.Matches(msg, a.keys.Up):
		a.cursor--
		a.clampCursor()
	case key.Matches(msg, a.keys.Enter):
		items := a.store.Search(a.query)
		if a.cursor < len(items) {
			// SetPreview emits preview-open; the subscriber flips the screen.
			a.store.SetPreview(items[a.cursor])
		}
	}
	return nil
}

func (a *App) updatePreview(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeModal(nil)
	case key.Matches(msg, a.keys.Enter):
		item, ok := a.store.Preview()
		if !ok {
			return nil
		}
		if a.store.InCart(item.ID) {
			a.store.RemoveFromCart(item.ID)
			return nil
		}
		if err := a.store.AddToCart(item.ID); err != nil {
			a.setError(err.Error())
		}
	}
	return nil
}

func (a *App) updateBasket(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeModal(nil)
	case key.Matches(msg, a.keys.Up):
		a.basketCursor--
		a.clampBasketCursor()
	case key.Matches(msg, a.keys.Down):
		a.basketCursor++
		a.clampBasketCursor()
	case key.Matches(msg, a.keys.Remove):
		ids := a.store.CartIDs()
		if a.basketCursor < len(ids) {
			a.store.RemoveFromCart(ids[a.basketCursor])
		}
	case key.Matches(msg, a.keys.Enter):
		if a.store.CartCount() > 0 {
			a.bus.Emit(events.TopicOrderOpen, nil)
		}
	}
	return nil
}

func (a *App) updateOrderForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeModal(nil)
		return nil
	case key.Matches(msg, a.keys.Toggle):
		next := store.PayOnline
		if a.store.OrderDraft().Payment == store.PayOnline {
			next = store.PayCash
		}
		a.bus.Emit(events.FieldTopic("order", "payment"),
			store.FieldChange{Field: store.FieldPayment, Value: string(next)})
		return nil
	case key.Matches(msg, a.keys.Enter):
		a.submitOrder(nil)
		return nil
	}

	var cmd tea.Cmd
	a.address, cmd = a.address.Update(msg)
	a.bus.Emit(events.FieldTopic("order", "address"),
		store.FieldChange{Field: store.FieldAddress, Value: a.address.Value()})
	return cmd
}

func (a *App) updateContacts(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.closeModal(nil)
		return nil
	case key.Matches(msg, a.keys.Toggle):
		a.contactFocus = 1 - a.contactFocus
		if a.contactFocus == 0 {
			a.email.Focus()
			a.phone.Blur()
		} else {
			a.phone.Focus()
			a.email.Blur()
		}
		return nil
	case key.Matches(msg, a.keys.Enter):
		a.submitContact(nil)
		return nil
	}

	var cmd tea.Cmd
	if a.contactFocus == 0 {
		a.email, cmd = a.email.Update(msg)
		a.bus.Emit(events.FieldTopic("contacts", "email"),
			store.FieldChange{Field: store.FieldEmail, Value: a.email.Value()})
	} else {
		a.phone, cmd = a.phone.Update(msg)
		a.bus.Emit(events.FieldTopic("contacts", "phone"),
			store.FieldChange{Field: store.FieldPhone, Value: a.phone.Value()})
	}
	return cmd
}

func (a *App) updateSuccess(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Enter) || key.Matches(msg, a.keys.Close) {
		a.closeModal(nil)
	}
	return nil
}
