package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

var (
	ErrInvalidQuantity = errors.New("cart: quantity must be greater than zero")
	ErrCartNotFound    = errors.New("cart: cart not found")
	ErrItemNotFound    = errors.New("cart: item not found in cart")
)

// Item is one cart line. Product is a copy of the catalog record taken when
// the line was added or last refreshed; later catalog mutations do not show
// through it.
type Item struct {
	ProductID int64
	Quantity  int
	Product   catalog.Product
}

// Cart is the ordered set of lines for one buyer, at most one line per
// product. Every line holds a quantity greater than zero; a line that would
// drop to zero is removed instead.
type Cart struct {
	BuyerID string
	Items   []Item
}

func New(buyerID string) *Cart {
	return &Cart{BuyerID: buyerID}
}

// Add merges quantity into an existing line for the product, refreshing its
// snapshot, or appends a new line with a fresh snapshot.
func (c *Cart) Add(p *catalog.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity
			c.Items[i].Product = *p.Clone()
			return nil
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Quantity:  quantity,
		Product:   *p.Clone(),
	})
	return nil
}

// Remove drops the line for the product if present. Removing an absent line
// is not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to an absolute value. A value of zero
// or below removes the line.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Totals sums snapshot price times quantity per currency unit. It reads only
// the stored snapshots, so totals reflect cart-time prices.
func (c *Cart) Totals() (inr, eth decimal.Decimal) {
	for _, item := range c.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		inr = inr.Add(item.Product.Price.Mul(qty))
		eth = eth.Add(item.Product.PriceETH.Mul(qty))
	}
	return inr, eth
}

// Clone returns an independent copy of the cart and its lines.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	clone := &Cart{BuyerID: c.BuyerID}
	clone.Items = append([]Item(nil), c.Items...)
	return clone
}
