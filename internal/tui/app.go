// Package tui is the orchestration layer: it owns the event bus
// subscriptions, translates terminal input into bus emissions, pulls
// data out of the store, and pushes view-models into the renderers.
// All flow passes through the bus; no component calls another directly.
package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/larkhq/larek/internal/events"
	"github.com/larkhq/larek/internal/shopapi"
	"github.com/larkhq/larek/internal/store"
)

// checkoutStep distinguishes the two forms that share ScreenOrder.
type checkoutStep int

const (
	stepOrderInfo checkoutStep = iota
	stepContacts
)

type keyMap struct {
	Quit   key.Binding
	Basket key.Binding
	Search key.Binding
	Retry  key.Binding
	Close  key.Binding
	Enter  key.Binding
	Remove key.Binding
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Basket: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "basket")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Remove: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
	}
}

// App is the bubbletea model tying bus, store, shop source and views
// together. Construct with New; everything is passed in explicitly.
type App struct {
	bus    *events.Bus
	store  *store.Store
	source shopapi.Source
	keys   keyMap

	width  int
	height int

	status    string
	statusErr bool
	fetchErr  bool // retry affordance for a failed catalog fetch

	cursor       int // catalog grid cursor
	basketCursor int
	searching    bool
	query        string

	step         checkoutStep
	address      textinput.Model
	email        textinput.Model
	phone        textinput.Model
	contactFocus int // 0 email, 1 phone

	lastTotal    string         // formatted total for the success screen
	pendingOrder *shopapi.Order // set by contacts-submit, consumed by Update

	// action callbacks; each emits exactly one topic
	openBasket    func(payload any)
	closeModal    func(payload any)
	submitOrder   func(payload any)
	submitContact func(payload any)
}

// New wires an App onto the given bus, store and shop source.
func New(bus *events.Bus, st *store.Store, source shopapi.Source) *App {
	address := textinput.New()
	address.Placeholder = "Parachute St 12"
	address.CharLimit = 120
	address.Width = 40

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40

	phone := textinput.New()
	phone.Placeholder = "+7 900 000 00 00"
	phone.CharLimit = 32
	phone.Width = 40

	a := &App{
		bus:     bus,
		store:   st,
		source:  source,
		keys:    newKeyMap(),
		address: address,
		email:   email,
		phone:   phone,
	}

	a.openBasket = bus.Trigger(events.TopicBasketOpen)
	a.closeModal = bus.Trigger(events.TopicModalClose)
	a.submitOrder = bus.Trigger(events.TopicOrderSubmit)
	a.submitContact = bus.Trigger(events.TopicContactsSubmit)

	a.wire()
	return a
}

// wire registers every bus subscription. Handlers mutate the store and
// app presentation state; rendering happens in View from fresh queries.
func (a *App) wire() {
	a.bus.On(events.TopicCatalogFetched, func(payload any) {
		items, ok := payload.([]store.Item)
		if !ok {
			log.Printf("tui: catalog-fetched payload %T", payload)
			return
		}
		a.store.LoadCatalog(items)
	})

	a.bus.On(events.TopicCatalogChanged, func(any) {
		a.clampCursor()
	})

	a.bus.On(events.TopicCartChanged, func(any) {
		a.clampBasketCursor()
	})

	a.bus.On(events.TopicBasketOpen, func(any) {
		a.store.SetScreen(store.ScreenBasket) // also wipes the draft
		a.basketCursor = 0
		a.bus.Emit(events.TopicModalOpen, nil)
	})

	a.bus.On(events.TopicPreviewOpen, func(any) {
		a.store.SetScreen(store.ScreenPreview)
		a.bus.Emit(events.TopicModalOpen, nil)
	})

	a.bus.On(events.TopicOrderOpen, func(any) {
		a.step = stepOrderInfo
		a.syncFormInputs()
		a.address.Focus()
		a.store.SetScreen(store.ScreenOrder)
		a.bus.Emit(events.TopicScreenUpdate, store.ScreenUpdate{Screen: store.ScreenOrder})
	})

	a.bus.On(events.TopicContactsOpen, func(any) {
		a.step = stepContacts
		a.contactFocus = 0
		a.email.Focus()
		a.phone.Blur()
		a.bus.Emit(events.TopicScreenUpdate, store.ScreenUpdate{Screen: store.ScreenOrder})
	})

	a.bus.On(events.TopicModalClose, func(any) {
		a.store.SetScreen(store.ScreenNone)
		a.address.Blur()
		a.email.Blur()
		a.phone.Blur()
	})

	// One pattern subscription per form covers every input field.
	fieldHandler := func(payload any) {
		change, ok := payload.(store.FieldChange)
		if !ok {
			log.Printf("tui: field payload %T", payload)
			return
		}
		if err := a.store.SetOrderField(change.Field, change.Value); err != nil {
			a.setError(err.Error())
		}
	}
	a.bus.OnMatch(events.OrderFieldPattern, fieldHandler)
	a.bus.OnMatch(events.ContactsFieldPattern, fieldHandler)

	a.bus.On(events.TopicOrderSubmit, func(any) {
		if len(a.store.ValidateOrderInfo()) > 0 {
			return
		}
		a.bus.Emit(events.TopicContactsOpen, nil)
	})

	a.bus.On(events.TopicContactsSubmit, func(any) {
		if len(a.store.ValidateOrder()) > 0 {
			return
		}
		draft := a.store.OrderDraft()
		order := shopapi.Order{
			Payment: string(draft.Payment),
			Address: draft.Address,
			Email:   draft.Email,
			Phone:   draft.Phone,
			Items:   a.store.CartIDs(),
			Total:   a.store.Total(),
		}
		a.pendingOrder = &order
		a.setStatus("Submitting order…")
	})

	a.bus.On(events.TopicOrderPlaced, func(payload any) {
		receipt, ok := payload.(shopapi.Receipt)
		if !ok {
			log.Printf("tui: order-placed payload %T", payload)
			return
		}
		a.lastTotal = a.store.FormatPrice(&receipt.Total)
		a.store.ClearCart()
		a.store.ClearOrderDraft()
		a.store.SetScreen(store.ScreenSuccess)
		a.setStatus("")
	})
}

// syncFormInputs seeds the text inputs from the draft, which is empty
// after any basket-open.
func (a *App) syncFormInputs() {
	draft := a.store.OrderDraft()
	a.address.SetValue(draft.Address)
	a.email.SetValue(draft.Email)
	a.phone.SetValue(draft.Phone)
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(text string) {
	a.status = text
	a.statusErr = true
}

func (a *App) clampCursor() {
	n := len(a.store.Search(a.query))
	if n == 0 {
		a.cursor = 0
		return
	}
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) clampBasketCursor() {
	n := a.store.CartCount()
	if n == 0 {
		a.basketCursor = 0
		return
	}
	if a.basketCursor >= n {
		a.basketCursor = n - 1
	}
	if a.basketCursor < 0 {
		a.basketCursor = 0
	}
}

// Init starts the catalog fetch.
func (a *App) Init() tea.Cmd {
	return fetchCatalogCmd(a.source)
}
