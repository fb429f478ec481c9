package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

// CatalogRepository keeps products and farmers in identifier-indexed maps
// with insertion-order indexes, guarded by a single RWMutex. The write lock
// serializes identifier assignment and makes AdjustQuantity's
// check-then-apply atomic.
type CatalogRepository struct {
	mu sync.RWMutex

	products     map[int64]*catalog.Product
	productOrder []int64

	farmers      map[int64]*catalog.Farmer
	farmerOrder  []int64
	farmerByAddr map[string]int64
	farmerByName map[string]int64

	// Records are never deleted, so max existing id + 1 reduces to a counter.
	nextProductID int64
	nextFarmerID  int64
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:      make(map[int64]*catalog.Product),
		farmers:       make(map[int64]*catalog.Farmer),
		farmerByAddr:  make(map[string]int64),
		farmerByName:  make(map[string]int64),
		nextProductID: 1,
		nextFarmerID:  1,
	}
}

func (r *CatalogRepository) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		p := r.products[id]
		if !matchProduct(p, filter) {
			continue
		}
		out = append(out, *p.Clone())
	}
	return out, nil
}

func (r *CatalogRepository) Product(ctx context.Context, id int64) (*catalog.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (r *CatalogRepository) ListFarmers(ctx context.Context, filter catalog.FarmerFilter) ([]catalog.Farmer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Farmer, 0, len(r.farmerOrder))
	for _, id := range r.farmerOrder {
		f := r.farmers[id]
		if !matchFarmer(f, filter) {
			continue
		}
		out = append(out, *f.Clone())
	}
	return out, nil
}

func (r *CatalogRepository) Farmer(ctx context.Context, id int64) (*catalog.Farmer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.farmers[id]
	if !ok {
		return nil, catalog.ErrFarmerNotFound
	}
	return f.Clone(), nil
}

func (r *CatalogRepository) FarmerByAddress(ctx context.Context, address string) (*catalog.Farmer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.farmerByAddr[address]
	if !ok {
		return nil, catalog.ErrFarmerNotFound
	}
	return r.farmers[id].Clone(), nil
}

func (r *CatalogRepository) InsertProduct(ctx context.Context, p *catalog.Product) (*catalog.Product, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	farmerID, ok := r.farmerByAddr[p.FarmerAddress]
	if !ok {
		return nil, catalog.ErrFarmerNotFound
	}

	stored := p.Clone()
	stored.ID = r.nextProductID
	r.nextProductID++

	r.products[stored.ID] = stored
	r.productOrder = append(r.productOrder, stored.ID)
	r.farmers[farmerID].TotalProducts++

	return stored.Clone(), nil
}

func (r *CatalogRepository) InsertFarmer(ctx context.Context, f *catalog.Farmer) (*catalog.Farmer, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.farmerByName[f.Name]; ok {
		return nil, catalog.ErrFarmerExists
	}
	if f.Address != "" {
		if _, ok := r.farmerByAddr[f.Address]; ok {
			return nil, catalog.ErrFarmerExists
		}
	}

	stored := f.Clone()
	stored.ID = r.nextFarmerID
	r.nextFarmerID++

	r.farmers[stored.ID] = stored
	r.farmerOrder = append(r.farmerOrder, stored.ID)
	r.farmerByName[stored.Name] = stored.ID
	if stored.Address != "" {
		r.farmerByAddr[stored.Address] = stored.ID
	}

	return stored.Clone(), nil
}

func (r *CatalogRepository) AdjustQuantity(ctx context.Context, productID int64, delta int) (*catalog.Product, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	if p.Quantity+delta < 0 {
		return nil, catalog.ErrInsufficientStock
	}
	p.Quantity += delta

	return p.Clone(), nil
}

func matchProduct(p *catalog.Product, filter catalog.ProductFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}
	if filter.FarmerName != "" {
		if !strings.Contains(strings.ToLower(p.FarmerName), strings.ToLower(filter.FarmerName)) {
			return false
		}
	}
	return true
}

func matchFarmer(f *catalog.Farmer, filter catalog.FarmerFilter) bool {
	if filter.Location != "" {
		if !strings.Contains(strings.ToLower(f.Location), strings.ToLower(filter.Location)) {
			return false
		}
	}
	if filter.Specialty != "" {
		specialty := strings.ToLower(filter.Specialty)
		found := false
		for _, s := range f.Specialties {
			if strings.Contains(strings.ToLower(s), specialty) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
