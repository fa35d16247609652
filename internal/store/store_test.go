package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larkhq/larek/internal/events"
)

func price(v float64) *float64 { return &v }

func testStore(t *testing.T) (*Store, *events.Bus) {
	t.Helper()
	bus := events.New()
	return New(bus, Labels{Currency: "syn", NotForSale: "Priceless"}), bus
}

func loadTwo(t *testing.T, s *Store) {
	t.Helper()
	s.LoadCatalog([]Item{
		{ID: "a", Title: "Alpha", Category: "other", Price: price(100)},
		{ID: "b", Title: "Beta", Category: "other", Price: nil},
	})
}

func TestAddToCartRejectsPriceless(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	loadTwo(t, s)

	err := s.AddToCart("b")
	require.ErrorIs(t, err, ErrNotForSale)
	require.Empty(t, s.CartIDs())

	require.NoError(t, s.AddToCart("a"))
	require.Equal(t, []string{"a"}, s.CartIDs())
	require.Equal(t, 100.0, s.Total())
}

func TestAddToCartRejectsUnknownID(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	loadTwo(t, s)

	err := s.AddToCart("ghost")
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, s.CartIDs())
}

func TestCartNeverDuplicatesAndStaysOrdered(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	s.LoadCatalog([]Item{
		{ID: "a", Price: price(1)},
		{ID: "b", Price: price(2)},
		{ID: "c", Price: price(3)},
	})

	require.NoError(t, s.AddToCart("b"))
	require.NoError(t, s.AddToCart("a"))
	require.NoError(t, s.AddToCart("b")) // idempotent
	require.NoError(t, s.AddToCart("c"))
	require.Equal(t, []string{"b", "a", "c"}, s.CartIDs())
	require.Equal(t, 6.0, s.Total())
}

func TestAddThenRemoveIsNoOpOnTotal(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	loadTwo(t, s)

	before := s.Total()
	require.NoError(t, s.AddToCart("a"))
	s.RemoveFromCart("a")
	require.Equal(t, before, s.Total())
	require.Empty(t, s.CartIDs())

	s.RemoveFromCart("a") // absent: no-op
	require.Empty(t, s.CartIDs())
}

func TestTotalMatchesItemPrices(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	s.LoadCatalog([]Item{
		{ID: "x", Price: price(10)},
		{ID: "y", Price: price(25.5)},
	})
	require.NoError(t, s.AddToCart("x"))
	require.NoError(t, s.AddToCart("y"))

	var want float64
	for _, id := range s.CartIDs() {
		it, err := s.ItemByID(id)
		require.NoError(t, err)
		want += *it.Price
	}
	require.Equal(t, want, s.Total())
}

func TestCartChangedEmittedOnlyOnMembershipChange(t *testing.T) {
	t.Parallel()
	bus := events.New()
	s := New(bus, Labels{})
	var emissions int
	bus.On(events.TopicCartChanged, func(any) { emissions++ })

	s.LoadCatalog([]Item{{ID: "a", Price: price(5)}})
	require.NoError(t, s.AddToCart("a"))
	require.NoError(t, s.AddToCart("a")) // already present: no emit
	s.RemoveFromCart("a")
	s.RemoveFromCart("a") // already absent: no emit
	require.Equal(t, 2, emissions)
}

func TestLoadCatalogReplacesWholesaleAndPrunesCart(t *testing.T) {
	t.Parallel()
	bus := events.New()
	s := New(bus, Labels{})

	var got []Item
	bus.On(events.TopicCatalogChanged, func(payload any) {
		got = payload.(CatalogChanged).Items
	})

	s.LoadCatalog([]Item{{ID: "a", Price: price(1)}, {ID: "b", Price: price(2)}})
	require.NoError(t, s.AddToCart("a"))
	require.NoError(t, s.AddToCart("b"))

	s.LoadCatalog([]Item{{ID: "b", Price: price(2)}})
	require.Len(t, got, 1)
	// cart ids stay a subset of catalog ids
	require.Equal(t, []string{"b"}, s.CartIDs())
}

func TestItemByIDUnknownReturnsNotFound(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	_, err := s.ItemByID("nope")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestSetPreviewEmitsItem(t *testing.T) {
	t.Parallel()
	bus := events.New()
	s := New(bus, Labels{})

	var opened Item
	bus.On(events.TopicPreviewOpen, func(payload any) {
		opened = payload.(PreviewOpen).Item
	})

	item := Item{ID: "a", Title: "Alpha", Price: price(9)}
	s.SetPreview(item)
	require.Equal(t, item, opened)

	current, ok := s.Preview()
	require.True(t, ok)
	require.Equal(t, item, current)
}

func TestValidateOrderGroups(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)

	require.NoError(t, s.SetOrderField(FieldEmail, "x@y.com"))
	require.NoError(t, s.SetOrderField(FieldPhone, "123"))

	errs := s.ValidateOrder()
	require.Contains(t, errs, FieldPayment)
	require.Contains(t, errs, FieldAddress)
	require.NotContains(t, errs, FieldEmail)
	require.NotContains(t, errs, FieldPhone)

	require.NoError(t, s.SetOrderField(FieldPayment, string(PayCash)))
	require.NoError(t, s.SetOrderField(FieldAddress, "Main St 1"))
	require.Empty(t, s.ValidateOrder())

	// removing one required field reintroduces exactly its own key
	require.NoError(t, s.SetOrderField(FieldPhone, ""))
	errs = s.ValidateOrder()
	require.Len(t, errs, 1)
	require.Contains(t, errs, FieldPhone)
}

func TestValidateNeverCachesStaleResults(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)

	require.NotEmpty(t, s.ValidateOrderInfo())
	require.NoError(t, s.SetOrderField(FieldPayment, string(PayOnline)))
	require.NoError(t, s.SetOrderField(FieldAddress, "somewhere"))
	require.Empty(t, s.ValidateOrderInfo())
	require.NoError(t, s.SetOrderField(FieldAddress, ""))
	require.Contains(t, s.ValidateOrderInfo(), FieldAddress)
}

func TestSetOrderFieldRejectsBadPayment(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	err := s.SetOrderField(FieldPayment, "barter")
	require.ErrorIs(t, err, ErrBadPayment)
	require.Equal(t, PaymentMethod(""), s.OrderDraft().Payment)
}

func TestSetOrderFieldUnknownFieldPanics(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)
	require.Panics(t, func() { _ = s.SetOrderField(OrderField("nickname"), "x") })
}

func TestBasketScreenWipesDraft(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)

	require.NoError(t, s.SetOrderField(FieldPayment, string(PayOnline)))
	require.NoError(t, s.SetOrderField(FieldAddress, "Main St 1"))
	require.NoError(t, s.SetOrderField(FieldEmail, "x@y.com"))

	s.SetScreen(ScreenBasket)
	require.Equal(t, Draft{}, s.OrderDraft())
	require.Equal(t, ScreenBasket, s.Screen())

	// other transitions keep the draft
	require.NoError(t, s.SetOrderField(FieldAddress, "kept"))
	s.SetScreen(ScreenOrder)
	require.Equal(t, "kept", s.OrderDraft().Address)
}

func TestScreenTransitionsAreCallerDriven(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)

	require.Equal(t, ScreenNone, s.Screen())
	for _, screen := range []Screen{ScreenPreview, ScreenOrder, ScreenSuccess, ScreenNone} {
		s.SetScreen(screen)
		require.Equal(t, screen, s.Screen())
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()
	s, _ := testStore(t)

	require.Equal(t, "Priceless", s.FormatPrice(nil))
	require.Equal(t, "100 syn", s.FormatPrice(price(100)))
	require.Equal(t, "25.5 syn", s.FormatPrice(price(25.5)))
}

func TestClearCartAndDraftEmitNothing(t *testing.T) {
	t.Parallel()
	bus := events.New()
	s := New(bus, Labels{})

	var emissions int
	bus.OnMatch(events.OrderFieldPattern, func(any) { emissions++ })
	bus.On(events.TopicCartChanged, func(any) { emissions++ })

	s.LoadCatalog([]Item{{ID: "a", Price: price(1)}})
	require.NoError(t, s.AddToCart("a"))
	emissions = 0

	s.ClearCart()
	s.ClearOrderDraft()
	require.Zero(t, emissions)
	require.Empty(t, s.CartIDs())
}
