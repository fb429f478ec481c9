package memory

import (
	"context"
	"sync"

	"github.com/farmchain/marketplace/internal/domain/cart"
)

// CartRepository keeps carts keyed by buyer identity. The outer RWMutex only
// guards the buyer map; each entry carries its own mutex so mutations for the
// same buyer are serialized while different buyers proceed in parallel.
type CartRepository struct {
	mu     sync.RWMutex
	buyers map[string]*buyerCart
}

type buyerCart struct {
	mu   sync.Mutex
	cart *cart.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		buyers: make(map[string]*buyerCart),
	}
}

func (r *CartRepository) Get(ctx context.Context, buyerID string) (*cart.Cart, error) {
	_ = ctx

	r.mu.RLock()
	entry, ok := r.buyers[buyerID]
	r.mu.RUnlock()

	if !ok {
		return cart.New(buyerID), nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.cart.Clone(), nil
}

func (r *CartRepository) Update(ctx context.Context, buyerID string, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	_ = ctx

	entry := r.entry(buyerID)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.cart.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	entry.cart = working

	return working.Clone(), nil
}

func (r *CartRepository) Exists(ctx context.Context, buyerID string) (bool, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.buyers[buyerID]
	return ok, nil
}

func (r *CartRepository) entry(buyerID string) *buyerCart {
	r.mu.RLock()
	entry, ok := r.buyers[buyerID]
	r.mu.RUnlock()
	if ok {
		return entry
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok = r.buyers[buyerID]; ok {
		return entry
	}
	entry = &buyerCart{cart: cart.New(buyerID)}
	r.buyers[buyerID] = entry
	return entry
}
