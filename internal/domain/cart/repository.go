package cart

import "context"

// Repository owns cart records keyed by buyer identity. Implementations must
// serialize Update calls for the same buyer; different buyers may proceed in
// parallel.
type Repository interface {
	// Get returns a copy of the buyer's cart, or an empty cart when the
	// buyer is unknown. It never fails.
	Get(ctx context.Context, buyerID string) (*Cart, error)

	// Update runs fn against the buyer's cart inside the buyer's critical
	// section, creating the cart if absent. When fn returns an error the
	// cart is left unchanged. Returns a copy of the resulting cart.
	Update(ctx context.Context, buyerID string, fn func(c *Cart) error) (*Cart, error)

	// Exists reports whether a cart entry has been created for the buyer.
	Exists(ctx context.Context, buyerID string) (bool, error)
}
