package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetCatalogDecodesListEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/product/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"items": [
				{"id": "a", "title": "Alpha", "image": "a.svg", "category": "other", "price": 100},
				{"id": "b", "title": "Beta", "image": "b.svg", "category": "other", "price": null}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	items, err := client.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].ID)
	require.NotNil(t, items[0].Price)
	require.Equal(t, 100.0, *items[0].Price)
	require.Nil(t, items[1].Price, "null price must decode to nil")
}

func TestGetCatalogMapsNon2xxToError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.GetCatalog(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestSubmitOrderRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)

		var order Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		require.Equal(t, "online", order.Payment)
		require.Equal(t, []string{"a", "b"}, order.Items)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "order-1", "total": 300}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	receipt, err := client.SubmitOrder(context.Background(), Order{
		Payment: "online",
		Address: "Main St 1",
		Email:   "x@y.com",
		Phone:   "123",
		Items:   []string{"a", "b"},
		Total:   300,
	})
	require.NoError(t, err)
	require.Equal(t, "order-1", receipt.ID)
	require.Equal(t, 300.0, receipt.Total)
}

func TestSubmitOrderErrorIncludesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "total mismatch", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.SubmitOrder(context.Background(), Order{Items: []string{"a"}, Total: 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "total mismatch")
}

func TestClientWithoutBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient("", 0)
	_, err := client.GetCatalog(context.Background())
	require.ErrorIs(t, err, ErrNoBaseURL)
	_, err = client.SubmitOrder(context.Background(), Order{})
	require.ErrorIs(t, err, ErrNoBaseURL)
}
