package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/larkhq/larek/internal/shopapi"
	"github.com/larkhq/larek/internal/store"
)

// The shop source is the only asynchronous boundary. Each call runs as a
// tea.Cmd; the completion message is fed back into the bus by Update, so
// downstream re-render logic stays reachable via subscription.

type catalogFetchedMsg struct {
	items []store.Item
	err   error
}

type orderPlacedMsg struct {
	receipt shopapi.Receipt
	err     error
}

func fetchCatalogCmd(source shopapi.Source) tea.Cmd {
	return func() tea.Msg {
		items, err := source.GetCatalog(context.Background())
		return catalogFetchedMsg{items: items, err: err}
	}
}

func submitOrderCmd(source shopapi.Source, order shopapi.Order) tea.Cmd {
	return func() tea.Msg {
		receipt, err := source.SubmitOrder(context.Background(), order)
		return orderPlacedMsg{receipt: receipt, err: err}
	}
}
