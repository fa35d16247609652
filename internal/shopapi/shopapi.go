// Package shopapi talks to the shop backend: catalog download and order
// submission. The TUI never calls it directly; the orchestrator runs it
// behind the program's async command boundary and feeds results back
// through the event bus.
package shopapi

import (
	"context"

	"github.com/larkhq/larek/internal/store"
)

// Order is the submit payload: the validated draft plus cart contents.
type Order struct {
	Payment string   `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Items   []string `json:"items"`
	Total   float64  `json:"total"`
}

// Receipt is the backend's confirmation of a submitted order.
type Receipt struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// Source is the async collaborator contract the orchestrator depends on.
type Source interface {
	GetCatalog(ctx context.Context) ([]store.Item, error)
	SubmitOrder(ctx context.Context, order Order) (Receipt, error)
}
