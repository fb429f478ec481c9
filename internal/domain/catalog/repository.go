package catalog

import "context"

// ProductFilter narrows ListProducts. All provided predicates must match.
// Search matches name or description case-insensitively; Category is an
// exact match; FarmerName is a case-insensitive substring of the owning
// farmer's display name.
type ProductFilter struct {
	Category   string
	Search     string
	FarmerName string
}

// FarmerFilter narrows ListFarmers. Location is a case-insensitive substring
// of the farmer's location; Specialty matches when it is a substring of any
// of the farmer's specialties.
type FarmerFilter struct {
	Location  string
	Specialty string
}

// Repository owns all product and farmer records. Implementations must
// serialize identifier assignment and make AdjustQuantity's check-then-apply
// atomic per product.
type Repository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	Product(ctx context.Context, id int64) (*Product, error)
	ListFarmers(ctx context.Context, filter FarmerFilter) ([]Farmer, error)
	Farmer(ctx context.Context, id int64) (*Farmer, error)
	FarmerByAddress(ctx context.Context, address string) (*Farmer, error)

	// InsertProduct assigns the next identifier, appends the product, and
	// increments the owning farmer's TotalProducts in the same critical
	// section. Fails with ErrFarmerNotFound if the owner is unknown.
	InsertProduct(ctx context.Context, p *Product) (*Product, error)

	// InsertFarmer assigns the next identifier and appends the farmer.
	// Fails with ErrFarmerExists on a duplicate display name or, when an
	// address is set, a duplicate wallet address.
	InsertFarmer(ctx context.Context, f *Farmer) (*Farmer, error)

	// AdjustQuantity applies quantity += delta atomically. Fails with
	// ErrInsufficientStock when the result would be negative, leaving the
	// stock untouched. This is the single mutation point for stock levels.
	AdjustQuantity(ctx context.Context, productID int64, delta int) (*Product, error)
}
