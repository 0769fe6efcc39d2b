package service

import (
	"context"
	"log"
	"time"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/queue"
	"github.com/vibecommerce/storefront/internal/utils"
)

// CheckoutLine is one caller-supplied priced line. Price and Subtotal are
// pointers so a body that omits them is distinguishable from a legitimate
// zero and can be rejected as malformed.
type CheckoutLine struct {
	Name     string
	Quantity int
	Price    *float64
	Subtotal *float64
}

// CheckoutService settles a priced cart view into an immutable order.
//
// Settlement trusts the caller-supplied view instead of re-deriving it from
// the cart store; the totals are a pure function of the posted lines plus
// the issued ref and timestamp.
type CheckoutService struct {
	Cart    CartStore
	Orders  OrderStore
	TaxRate float64
	// Publish, when set, emits the order-confirmed event after settlement.
	// Failures are logged, never surfaced: the order is already authoritative.
	Publish func(ctx context.Context, ev queue.OrderConfirmedEvent) error
}

func NewCheckoutService(cart CartStore, orders OrderStore, taxRate float64) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders, TaxRate: taxRate}
}

// Settle validates the view, computes subtotal -> tax -> total, persists the
// order and clears the owner's cart. An empty or malformed view fails before
// any side effect. If clearing fails after the order exists, the order still
// stands: settlement is the authoritative event and the cart inconsistency
// is reported, not rolled back.
func (s *CheckoutService) Settle(ctx context.Context, ownerID string, lines []CheckoutLine, customer model.CustomerInfo) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity < 1 || l.Price == nil || *l.Price < 0 || l.Subtotal == nil || *l.Subtotal < 0 {
			return nil, model.ErrMalformedCart
		}
	}

	var subtotal float64
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		subtotal += *l.Subtotal
		items = append(items, model.OrderItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: *l.Price,
			Subtotal:  *l.Subtotal,
		})
	}
	tax := subtotal * s.TaxRate
	total := subtotal + tax

	ref, err := utils.NewOrderRef()
	if err != nil {
		return nil, err
	}
	order := &model.Order{
		Ref:           ref,
		OwnerID:       ownerID,
		Customer:      customer,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: "Cash on Delivery",
		Status:        "Confirmed",
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	if err := s.Cart.Clear(ctx, ownerID); err != nil {
		log.Printf("checkout: cart clear failed for owner %s after order %s: %v", ownerID, order.Ref, err)
	}
	if s.Publish != nil {
		ev := queue.OrderConfirmedEvent{
			OrderRef:      order.Ref,
			OwnerID:       order.OwnerID,
			CustomerName:  order.Customer.Name,
			CustomerEmail: order.Customer.Email,
			ItemCount:     len(order.Items),
			Total:         order.Total,
			PaymentMethod: order.PaymentMethod,
			ConfirmedAt:   order.CreatedAt.Format(time.RFC3339),
		}
		if err := s.Publish(ctx, ev); err != nil {
			log.Printf("checkout: publish order.confirmed failed for %s: %v", order.Ref, err)
		}
	}
	return order, nil
}

// Orders lists the owner's settled orders, newest first.
func (s *CheckoutService) OrdersFor(ctx context.Context, ownerID string) ([]model.Order, error) {
	return s.Orders.ListByOwner(ctx, ownerID)
}
