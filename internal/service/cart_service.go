// Package service contains the storefront's business logic. Services depend
// on small store interfaces so the MySQL repositories and the in-memory
// stores are interchangeable.
package service

import (
	"context"

	"github.com/vibecommerce/storefront/internal/model"
)

// Catalog is the read/write product store. Shoppers only use List/GetByID;
// Create/Update/Delete serve the admin surface.
type Catalog interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

// CartStore holds the canonical owner-partitioned cart lines. AddOrMerge
// must behave as one atomic read-add-write per (owner, product) pair.
type CartStore interface {
	AddOrMerge(ctx context.Context, ownerID string, productID int64, qty int) error
	Remove(ctx context.Context, lineID string) error
	Clear(ctx context.Context, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.CartLine, error)
}

// OrderStore persists settled orders.
type OrderStore interface {
	Insert(ctx context.Context, o *model.Order) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error)
}

// UserStore holds shopper and admin accounts.
type UserStore interface {
	Create(ctx context.Context, username, password, role string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// CartService mutates carts and produces priced views.
type CartService struct {
	Cart    CartStore
	Catalog Catalog
}

func NewCartService(cart CartStore, catalog Catalog) *CartService {
	return &CartService{Cart: cart, Catalog: catalog}
}

// Add merges qty into the owner's line for productID. Product existence is
// not checked here: a dangling reference surfaces (as a dropped line) at
// view time instead.
func (s *CartService) Add(ctx context.Context, ownerID string, productID int64, qty int) error {
	if qty < 1 {
		return model.ErrInvalidQuantity
	}
	return s.Cart.AddOrMerge(ctx, ownerID, productID, qty)
}

// Remove deletes one line. Absent lines are a no-op success.
func (s *CartService) Remove(ctx context.Context, lineID string) error {
	return s.Cart.Remove(ctx, lineID)
}

// View joins the owner's lines against the catalog and totals them. Lines
// whose product no longer resolves are silently dropped: the catalog may
// have been edited by an admin after the line was added, and a stale line
// should vanish rather than poison the whole cart.
func (s *CartService) View(ctx context.Context, ownerID string) (model.CartView, error) {
	lines, err := s.Cart.ListByOwner(ctx, ownerID)
	if err != nil {
		return model.CartView{}, err
	}
	view := model.CartView{Items: []model.LineView{}}
	for _, l := range lines {
		p, err := s.Catalog.GetByID(ctx, l.ProductID)
		if err == model.ErrProductNotFound {
			continue
		}
		if err != nil {
			return model.CartView{}, err
		}
		sub := float64(l.Quantity) * p.Price
		view.Items = append(view.Items, model.LineView{
			LineID:    l.ID,
			ProductID: p.ID,
			Quantity:  l.Quantity,
			Name:      p.Name,
			Price:     p.Price,
			Subtotal:  sub,
		})
		view.GrandTotal += sub
	}
	return view, nil
}
