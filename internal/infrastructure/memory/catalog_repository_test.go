package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

func newFarmer(name, address string) *catalog.Farmer {
	return &catalog.Farmer{
		Name:        name,
		Address:     address,
		Location:    "Punjab, India",
		Specialties: []string{"Organic Vegetables"},
		Experience:  "15 years",
		Rating:      4.5,
	}
}

func newProduct(name, category, farmerAddress string, quantity int) *catalog.Product {
	return &catalog.Product{
		Name:          name,
		Category:      category,
		Description:   "field-fresh " + name,
		Price:         decimal.NewFromInt(100),
		PriceETH:      decimal.RequireFromString("0.0012"),
		Quantity:      quantity,
		Unit:          "kg",
		FarmerName:    "Rajesh Kumar",
		FarmerAddress: farmerAddress,
	}
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("InsertFarmer_AssignsSequentialIDs", func(t *testing.T) {
		repo := NewCatalogRepository()

		first, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)
		second, err := repo.InsertFarmer(ctx, newFarmer("Priya Sharma", "0x2222"))
		require.NoError(t, err)

		require.Equal(t, int64(1), first.ID)
		require.Equal(t, int64(2), second.ID)
	})

	t.Run("InsertFarmer_RejectsDuplicateName", func(t *testing.T) {
		repo := NewCatalogRepository()

		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		_, err = repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x9999"))
		require.ErrorIs(t, err, catalog.ErrFarmerExists)

		farmers, err := repo.ListFarmers(ctx, catalog.FarmerFilter{})
		require.NoError(t, err)
		require.Len(t, farmers, 1)
	})

	t.Run("InsertFarmer_RejectsDuplicateAddress", func(t *testing.T) {
		repo := NewCatalogRepository()

		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		_, err = repo.InsertFarmer(ctx, newFarmer("Priya Sharma", "0x1111"))
		require.ErrorIs(t, err, catalog.ErrFarmerExists)
	})

	t.Run("InsertProduct_RequiresExistingFarmer", func(t *testing.T) {
		repo := NewCatalogRepository()

		_, err := repo.InsertProduct(ctx, newProduct("Organic Tomatoes", "vegetables", "0xmissing", 50))
		require.ErrorIs(t, err, catalog.ErrFarmerNotFound)
	})

	t.Run("InsertProduct_IncrementsOwnerProductCount", func(t *testing.T) {
		repo := NewCatalogRepository()

		farmer, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)
		require.Zero(t, farmer.TotalProducts)

		const n = 4
		for range n {
			_, err = repo.InsertProduct(ctx, newProduct("Organic Tomatoes", "vegetables", "0x1111", 50))
			require.NoError(t, err)
		}

		got, err := repo.Farmer(ctx, farmer.ID)
		require.NoError(t, err)
		require.Equal(t, n, got.TotalProducts)
	})

	t.Run("AdjustQuantity_FloorsAtZero", func(t *testing.T) {
		repo := NewCatalogRepository()
		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)
		p, err := repo.InsertProduct(ctx, newProduct("Organic Tomatoes", "vegetables", "0x1111", 2))
		require.NoError(t, err)

		updated, err := repo.AdjustQuantity(ctx, p.ID, -2)
		require.NoError(t, err)
		require.Zero(t, updated.Quantity)

		_, err = repo.AdjustQuantity(ctx, p.ID, -1)
		require.ErrorIs(t, err, catalog.ErrInsufficientStock)

		got, err := repo.Product(ctx, p.ID)
		require.NoError(t, err)
		require.Zero(t, got.Quantity)
	})

	t.Run("AdjustQuantity_UnknownProduct", func(t *testing.T) {
		repo := NewCatalogRepository()

		_, err := repo.AdjustQuantity(ctx, 42, -1)
		require.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("AdjustQuantity_ConcurrentDecrementsNeverOversell", func(t *testing.T) {
		repo := NewCatalogRepository()
		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		const stock = 10
		p, err := repo.InsertProduct(ctx, newProduct("Organic Tomatoes", "vegetables", "0x1111", stock))
		require.NoError(t, err)

		const attempts = 50
		var wg sync.WaitGroup
		successes := make(chan struct{}, attempts)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.AdjustQuantity(ctx, p.ID, -1); err == nil {
					successes <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(successes)

		require.Len(t, successes, stock)

		got, err := repo.Product(ctx, p.ID)
		require.NoError(t, err)
		require.Zero(t, got.Quantity)
	})

	t.Run("ListProducts_ComposesFilters", func(t *testing.T) {
		repo := NewCatalogRepository()
		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		organicVeg := newProduct("Organic Tomatoes", "vegetables", "0x1111", 50)
		plainVeg := newProduct("Carrots", "vegetables", "0x1111", 50)
		plainVeg.Description = "crunchy carrots"
		organicFruit := newProduct("Organic Mangoes", "fruits", "0x1111", 50)

		for _, p := range []*catalog.Product{organicVeg, plainVeg, organicFruit} {
			_, err = repo.InsertProduct(ctx, p)
			require.NoError(t, err)
		}

		got, err := repo.ListProducts(ctx, catalog.ProductFilter{
			Category: "vegetables",
			Search:   "organic",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Organic Tomatoes", got[0].Name)
	})

	t.Run("ListProducts_PreservesInsertionOrder", func(t *testing.T) {
		repo := NewCatalogRepository()
		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		names := []string{"Organic Tomatoes", "Basmati Rice", "Garam Masala"}
		for _, name := range names {
			_, err = repo.InsertProduct(ctx, newProduct(name, "misc", "0x1111", 5))
			require.NoError(t, err)
		}

		got, err := repo.ListProducts(ctx, catalog.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, got, len(names))
		for i, name := range names {
			require.Equal(t, name, got[i].Name)
		}
	})

	t.Run("ListFarmers_FiltersBySpecialtySubstring", func(t *testing.T) {
		repo := NewCatalogRepository()

		spiceFarmer := newFarmer("Meera Patel", "0x7777")
		spiceFarmer.Specialties = []string{"Spices", "Turmeric"}
		_, err := repo.InsertFarmer(ctx, spiceFarmer)
		require.NoError(t, err)
		_, err = repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)

		got, err := repo.ListFarmers(ctx, catalog.FarmerFilter{Specialty: "turmer"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Meera Patel", got[0].Name)
	})

	t.Run("Product_ReturnsIndependentCopy", func(t *testing.T) {
		repo := NewCatalogRepository()
		_, err := repo.InsertFarmer(ctx, newFarmer("Rajesh Kumar", "0x1111"))
		require.NoError(t, err)
		p, err := repo.InsertProduct(ctx, newProduct("Organic Tomatoes", "vegetables", "0x1111", 50))
		require.NoError(t, err)

		copy1, err := repo.Product(ctx, p.ID)
		require.NoError(t, err)
		copy1.Quantity = 0

		copy2, err := repo.Product(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, 50, copy2.Quantity)
	})
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()
	require.NoError(t, SeedCatalog(ctx, repo))

	products, err := repo.ListProducts(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 9)

	farmers, err := repo.ListFarmers(ctx, catalog.FarmerFilter{})
	require.NoError(t, err)
	require.Len(t, farmers, 9)

	// Each seeded farmer owns exactly the products seeded under them.
	for _, f := range farmers {
		owned, err := repo.ListProducts(ctx, catalog.ProductFilter{FarmerName: f.Name})
		require.NoError(t, err)
		require.Equal(t, len(owned), f.TotalProducts, "farmer %s", f.Name)
	}
}
