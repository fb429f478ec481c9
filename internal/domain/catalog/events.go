package catalog

import "time"

// FarmerRegisteredEvent is emitted when a new farmer is admitted to the catalog.
type FarmerRegisteredEvent struct {
	FarmerID   int64
	Name       string
	Address    string
	OccurredAt time.Time
}

func (FarmerRegisteredEvent) EventName() string { return "catalog.farmer_registered" }

func NewFarmerRegisteredEvent(f *Farmer) FarmerRegisteredEvent {
	return FarmerRegisteredEvent{
		FarmerID:   f.ID,
		Name:       f.Name,
		Address:    f.Address,
		OccurredAt: time.Now().UTC(),
	}
}

// ProductRegisteredEvent is emitted when a new product is listed.
type ProductRegisteredEvent struct {
	ProductID     int64
	Name          string
	FarmerAddress string
	Quantity      int
	OccurredAt    time.Time
}

func (ProductRegisteredEvent) EventName() string { return "catalog.product_registered" }

func NewProductRegisteredEvent(p *Product) ProductRegisteredEvent {
	return ProductRegisteredEvent{
		ProductID:     p.ID,
		Name:          p.Name,
		FarmerAddress: p.FarmerAddress,
		Quantity:      p.Quantity,
		OccurredAt:    time.Now().UTC(),
	}
}
