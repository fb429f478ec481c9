package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing owned by a farmer. Quantity is the live stock
// level and never goes negative.
type Product struct {
	ID            int64
	Name          string
	Category      string
	Description   string
	Price         decimal.Decimal
	PriceETH      decimal.Decimal
	Quantity      int
	Unit          string
	Image         string
	FarmerName    string
	FarmerAddress string
	Location      string
	Verified      bool
	Rating        float64
	Reviews       int
	CreatedAt     time.Time
}

// Clone returns an independent copy of the product.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
