// Package store provides in-memory implementations of the storefront's data
// stores. They back local development and tests when no database is
// configured; the MySQL implementations live in internal/repository.
package store

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vibecommerce/storefront/internal/model"
	"github.com/vibecommerce/storefront/internal/utils"
)

// MemoryCatalog is a concurrency-safe product catalog.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[int64]model.Product
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{products: make(map[int64]model.Product)}
}

// SeedDefaults loads the demo electronics catalog so a fresh process has
// something to browse and the assistant has products to recommend.
func (c *MemoryCatalog) SeedDefaults() {
	defaults := []model.Product{
		{ID: 1, Name: "Wireless Headphones", Price: 99.99},
		{ID: 2, Name: "Smartphone Case", Price: 24.99},
		{ID: 3, Name: "Bluetooth Speaker", Price: 79.99},
		{ID: 4, Name: "USB Cable", Price: 12.99},
		{ID: 5, Name: "Power Bank", Price: 49.99},
		{ID: 6, Name: "Screen Protector", Price: 9.99},
		{ID: 7, Name: "Wireless Charger", Price: 34.99},
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range defaults {
		c.products[p.ID] = p
	}
}

func (c *MemoryCatalog) List(ctx context.Context) ([]model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *MemoryCatalog) GetByID(ctx context.Context, id int64) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return model.Product{}, model.ErrProductNotFound
	}
	return p, nil
}

// Create issues the next sequential id (max+1) like the admin API promises.
func (c *MemoryCatalog) Create(ctx context.Context, p *model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var max int64
	for id := range c.products {
		if id > max {
			max = id
		}
	}
	p.ID = max + 1
	c.products[p.ID] = *p
	return nil
}

func (c *MemoryCatalog) Update(ctx context.Context, p model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[p.ID]; !ok {
		return model.ErrProductNotFound
	}
	c.products[p.ID] = p
	return nil
}

func (c *MemoryCatalog) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, id)
	return nil
}

// ownerCart serializes all mutations for a single owner. Different owners
// hold different locks, so carts never contend with each other.
type ownerCart struct {
	mu    sync.Mutex
	lines []model.CartLine
}

// MemoryCartStore keeps per-owner cart lines under per-owner locks. The
// outer lock only guards the owner map itself.
type MemoryCartStore struct {
	mu     sync.RWMutex
	owners map[string]*ownerCart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{owners: make(map[string]*ownerCart)}
}

func (s *MemoryCartStore) owner(ownerID string) *ownerCart {
	s.mu.RLock()
	oc, ok := s.owners[ownerID]
	s.mu.RUnlock()
	if ok {
		return oc
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if oc, ok = s.owners[ownerID]; ok {
		return oc
	}
	oc = &ownerCart{}
	s.owners[ownerID] = oc
	return oc
}

// AddOrMerge accumulates qty into the existing (owner, product) line or
// appends a new one. The owner lock makes the read-increment-write a single
// indivisible step.
func (s *MemoryCartStore) AddOrMerge(ctx context.Context, ownerID string, productID int64, qty int) error {
	oc := s.owner(ownerID)
	oc.mu.Lock()
	defer oc.mu.Unlock()
	for i := range oc.lines {
		if oc.lines[i].ProductID == productID {
			oc.lines[i].Quantity += qty
			return nil
		}
	}
	oc.lines = append(oc.lines, model.CartLine{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  qty,
	})
	return nil
}

// Remove deletes one line by id across all owners. Absent ids are a no-op.
func (s *MemoryCartStore) Remove(ctx context.Context, lineID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, oc := range s.owners {
		oc.mu.Lock()
		for i := range oc.lines {
			if oc.lines[i].ID == lineID {
				oc.lines = append(oc.lines[:i], oc.lines[i+1:]...)
				oc.mu.Unlock()
				return nil
			}
		}
		oc.mu.Unlock()
	}
	return nil
}

// Clear drops every line for the owner. Idempotent.
func (s *MemoryCartStore) Clear(ctx context.Context, ownerID string) error {
	oc := s.owner(ownerID)
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.lines = nil
	return nil
}

// ListByOwner returns a copy of the owner's lines in insertion order.
func (s *MemoryCartStore) ListByOwner(ctx context.Context, ownerID string) ([]model.CartLine, error) {
	oc := s.owner(ownerID)
	oc.mu.Lock()
	defer oc.mu.Unlock()
	out := make([]model.CartLine, len(oc.lines))
	copy(out, oc.lines)
	return out, nil
}

// MemoryOrderStore keeps settled orders per owner, newest first.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[string][]model.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[string][]model.Order)}
}

func (s *MemoryOrderStore) Insert(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.OwnerID] = append([]model.Order{*o}, s.orders[o.OwnerID]...)
	return nil
}

func (s *MemoryOrderStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders[ownerID]))
	copy(out, s.orders[ownerID])
	return out, nil
}

// MemoryUserStore holds accounts for the no-database mode.
type MemoryUserStore struct {
	mu     sync.Mutex
	byName map[string]model.User
	nextID uint64
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{byName: make(map[string]model.User), nextID: 1}
}

func (s *MemoryUserStore) Create(ctx context.Context, username, password, role string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[username]; ok {
		return 0, model.ErrUsernameExists
	}
	u := model.User{ID: s.nextID, Username: username, PasswordHash: hash, Role: role}
	s.nextID++
	s.byName[username] = u
	return u.ID, nil
}

func (s *MemoryUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byName[username]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}
