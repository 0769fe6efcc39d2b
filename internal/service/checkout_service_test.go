package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/queue"
)

type fakeCartStore struct {
	lines      []model.CartLine
	clearedFor []string
	clearErr   error
	listErr    error
}

func (f *fakeCartStore) AddOrMerge(_ context.Context, ownerID string, productID int64, qty int) error {
	for i, l := range f.lines {
		if l.OwnerID == ownerID && l.ProductID == productID {
			f.lines[i].Quantity += qty
			return nil
		}
	}
	id := fmt.Sprintf("line-%d", len(f.lines)+1)
	f.lines = append(f.lines, model.CartLine{ID: id, OwnerID: ownerID, ProductID: productID, Quantity: qty})
	return nil
}

func (f *fakeCartStore) Remove(_ context.Context, lineID string) error {
	for i, l := range f.lines {
		if l.ID == lineID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartStore) Clear(_ context.Context, ownerID string) error {
	f.clearedFor = append(f.clearedFor, ownerID)
	if f.clearErr != nil {
		return f.clearErr
	}
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.OwnerID != ownerID {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	return nil
}

func (f *fakeCartStore) ListByOwner(_ context.Context, ownerID string) ([]model.CartLine, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.CartLine
	for _, l := range f.lines {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeOrderStore struct {
	orders    []model.Order
	insertErr error
}

func (f *fakeOrderStore) Insert(_ context.Context, o *model.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderStore) ListByOwner(_ context.Context, ownerID string) ([]model.Order, error) {
	var out []model.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].OwnerID == ownerID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func fptr(v float64) *float64 { return &v }

func pricedLines() []CheckoutLine {
	return []CheckoutLine{
		{Name: "Wireless Headphones", Quantity: 1, Price: fptr(99.99), Subtotal: fptr(99.99)},
		{Name: "USB Cable", Quantity: 2, Price: fptr(12.99), Subtotal: fptr(25.98)},
	}
}

func TestSettle_EmptyCartRejectedBeforeSideEffects(t *testing.T) {
	cart := &fakeCartStore{}
	orders := &fakeOrderStore{}
	svc := NewCheckoutService(cart, orders, 0.18)

	_, err := svc.Settle(context.Background(), "u1", nil, model.CustomerInfo{Name: "Ada"})
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Empty(t, orders.orders)
	assert.Empty(t, cart.clearedFor)
}

func TestSettle_MalformedLinesRejected(t *testing.T) {
	cart := &fakeCartStore{}
	orders := &fakeOrderStore{}
	svc := NewCheckoutService(cart, orders, 0.18)

	bad := [][]CheckoutLine{
		{{Name: "x", Quantity: 0, Price: fptr(1), Subtotal: fptr(0)}},
		{{Name: "x", Quantity: 1, Price: nil, Subtotal: fptr(1)}},
		{{Name: "x", Quantity: 1, Price: fptr(-5), Subtotal: fptr(-5)}},
		{{Name: "x", Quantity: 1, Price: fptr(1), Subtotal: nil}},
		{{Name: "x", Quantity: 1, Price: fptr(1), Subtotal: fptr(-1)}},
	}
	for _, lines := range bad {
		_, err := svc.Settle(context.Background(), "u1", lines, model.CustomerInfo{})
		assert.ErrorIs(t, err, model.ErrMalformedCart)
	}
	assert.Empty(t, orders.orders)
	assert.Empty(t, cart.clearedFor)
}

func TestSettle_TaxArithmetic(t *testing.T) {
	svc := NewCheckoutService(&fakeCartStore{}, &fakeOrderStore{}, 0.18)

	order, err := svc.Settle(context.Background(), "u1",
		[]CheckoutLine{{Name: "Round Hundred", Quantity: 1, Price: fptr(100), Subtotal: fptr(100)}},
		model.CustomerInfo{Name: "Ada"})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 18.0, order.Tax, 1e-9)
	assert.InDelta(t, 118.0, order.Total, 1e-9)
}

func TestSettle_MultiLineTotals(t *testing.T) {
	svc := NewCheckoutService(&fakeCartStore{}, &fakeOrderStore{}, 0.18)

	order, err := svc.Settle(context.Background(), "u1", pricedLines(),
		model.CustomerInfo{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.InDelta(t, 125.97, order.Subtotal, 1e-9)
	assert.InDelta(t, 22.6746, order.Tax, 1e-9)
	assert.InDelta(t, 148.6446, order.Total, 1e-9)
}

func TestSettle_OrderShape(t *testing.T) {
	cart := &fakeCartStore{}
	orders := &fakeOrderStore{}
	svc := NewCheckoutService(cart, orders, 0.18)

	order, err := svc.Settle(context.Background(), "u1", pricedLines(),
		model.CustomerInfo{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Len(t, order.Ref, 10)
	for _, r := range order.Ref {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'), "ref char %q", r)
	}
	assert.Equal(t, "Cash on Delivery", order.PaymentMethod)
	assert.Equal(t, "Confirmed", order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Wireless Headphones", order.Items[0].Name)
	assert.InDelta(t, 25.98, order.Items[1].Subtotal, 1e-9)

	require.Len(t, orders.orders, 1)
	assert.Equal(t, order.Ref, orders.orders[0].Ref)
	assert.Equal(t, []string{"u1"}, cart.clearedFor)
}

func TestSettle_UniqueRefs(t *testing.T) {
	svc := NewCheckoutService(&fakeCartStore{}, &fakeOrderStore{}, 0.18)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
		require.NoError(t, err)
		assert.False(t, seen[order.Ref], "duplicate ref %s", order.Ref)
		seen[order.Ref] = true
	}
}

func TestSettle_InsertFailureLeavesCartIntact(t *testing.T) {
	cart := &fakeCartStore{}
	orders := &fakeOrderStore{insertErr: errors.New("db down")}
	svc := NewCheckoutService(cart, orders, 0.18)

	_, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
	require.Error(t, err)
	assert.Empty(t, cart.clearedFor)
}

func TestSettle_ClearFailureStillReturnsOrder(t *testing.T) {
	cart := &fakeCartStore{clearErr: errors.New("cart store down")}
	orders := &fakeOrderStore{}
	svc := NewCheckoutService(cart, orders, 0.18)

	order, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
	require.NoError(t, err)
	assert.NotNil(t, order)
	require.Len(t, orders.orders, 1)
}

func TestSettle_PublishesConfirmedEvent(t *testing.T) {
	svc := NewCheckoutService(&fakeCartStore{}, &fakeOrderStore{}, 0.18)
	var got queue.OrderConfirmedEvent
	svc.Publish = func(_ context.Context, ev queue.OrderConfirmedEvent) error {
		got = ev
		return nil
	}

	order, err := svc.Settle(context.Background(), "u1", pricedLines(),
		model.CustomerInfo{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, order.Ref, got.OrderRef)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, "Ada", got.CustomerName)
	assert.Equal(t, 2, got.ItemCount)
	assert.InDelta(t, order.Total, got.Total, 1e-9)
}

func TestSettle_PublishFailureIsBestEffort(t *testing.T) {
	svc := NewCheckoutService(&fakeCartStore{}, &fakeOrderStore{}, 0.18)
	svc.Publish = func(context.Context, queue.OrderConfirmedEvent) error {
		return errors.New("broker unreachable")
	}

	order, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrdersFor_NewestFirst(t *testing.T) {
	orders := &fakeOrderStore{}
	svc := NewCheckoutService(&fakeCartStore{}, orders, 0.18)

	first, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
	require.NoError(t, err)
	second, err := svc.Settle(context.Background(), "u1", pricedLines(), model.CustomerInfo{})
	require.NoError(t, err)

	got, err := svc.OrdersFor(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.Ref, got[0].Ref)
	assert.Equal(t, first.Ref, got[1].Ref)
}
