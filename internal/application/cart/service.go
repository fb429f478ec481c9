package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domcart "github.com/farmchain/marketplace/internal/domain/cart"
	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
)

// Service coordinates cart mutations against the catalog. Product data is
// snapshotted into the cart line at add time; later catalog changes do not
// alter existing lines.
type Service struct {
	carts   domcart.Repository
	catalog domcatalog.Repository
}

func NewService(carts domcart.Repository, catalog domcatalog.Repository) *Service {
	return &Service{
		carts:   carts,
		catalog: catalog,
	}
}

// GetCart returns the buyer's cart lines, empty when the buyer is unknown.
func (s *Service) GetCart(ctx context.Context, buyerID string) ([]domcart.Item, error) {
	c, err := s.carts.Get(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("cart: get: %w", err)
	}
	return c.Items, nil
}

// AddItem resolves the product and merges it into the buyer's cart, taking a
// fresh snapshot of the product in either case.
func (s *Service) AddItem(ctx context.Context, buyerID string, productID int64, quantity int) (*domcart.Cart, error) {
	if quantity <= 0 {
		return nil, domcart.ErrInvalidQuantity
	}

	p, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("cart: resolve product: %w", err)
	}

	return s.carts.Update(ctx, buyerID, func(c *domcart.Cart) error {
		return c.Add(p, quantity)
	})
}

// RemoveItem drops the line for the product. Removing an absent item is not
// an error; the possibly unchanged cart is returned.
func (s *Service) RemoveItem(ctx context.Context, buyerID string, productID int64) (*domcart.Cart, error) {
	return s.carts.Update(ctx, buyerID, func(c *domcart.Cart) error {
		c.Remove(productID)
		return nil
	})
}

// UpdateQuantity sets a line's quantity to an absolute value; zero or below
// removes the line. Fails when the buyer has no cart or no such line.
func (s *Service) UpdateQuantity(ctx context.Context, buyerID string, productID int64, quantity int) (*domcart.Cart, error) {
	known, err := s.carts.Exists(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("cart: exists: %w", err)
	}
	if !known {
		return nil, domcart.ErrCartNotFound
	}

	return s.carts.Update(ctx, buyerID, func(c *domcart.Cart) error {
		return c.SetQuantity(productID, quantity)
	})
}

// Clear empties the buyer's cart, creating the entry if the buyer was
// previously unknown.
func (s *Service) Clear(ctx context.Context, buyerID string) (*domcart.Cart, error) {
	return s.carts.Update(ctx, buyerID, func(c *domcart.Cart) error {
		c.Clear()
		return nil
	})
}

// Totals sums the cart's snapshot prices per currency unit.
func (s *Service) Totals(ctx context.Context, buyerID string) (inr, eth decimal.Decimal, err error) {
	c, err := s.carts.Get(ctx, buyerID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("cart: get: %w", err)
	}
	inr, eth = c.Totals()
	return inr, eth, nil
}
