package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/marketplace/internal/domain/catalog"
)

func tomato() *catalog.Product {
	return &catalog.Product{
		ID:       1,
		Name:     "Organic Tomatoes",
		Price:    decimal.NewFromInt(150),
		PriceETH: decimal.RequireFromString("0.002"),
		Quantity: 50,
	}
}

func strawberry() *catalog.Product {
	return &catalog.Product{
		ID:       2,
		Name:     "Fresh Strawberries",
		Price:    decimal.NewFromInt(300),
		PriceETH: decimal.RequireFromString("0.004"),
		Quantity: 30,
	}
}

func TestCart(t *testing.T) {
	t.Run("Add_RejectsNonPositiveQuantity", func(t *testing.T) {
		c := New("0xbuyer")
		require.ErrorIs(t, c.Add(tomato(), 0), ErrInvalidQuantity)
		require.ErrorIs(t, c.Add(tomato(), -3), ErrInvalidQuantity)
		require.Empty(t, c.Items)
	})

	t.Run("Add_MergesExistingLineAndRefreshesSnapshot", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))

		repriced := tomato()
		repriced.Price = decimal.NewFromInt(175)
		require.NoError(t, c.Add(repriced, 1))

		require.Len(t, c.Items, 1)
		require.Equal(t, 3, c.Items[0].Quantity)
		require.True(t, c.Items[0].Product.Price.Equal(decimal.NewFromInt(175)))
	})

	t.Run("Add_SnapshotIsACopy", func(t *testing.T) {
		c := New("0xbuyer")
		p := tomato()
		require.NoError(t, c.Add(p, 1))

		p.Price = decimal.NewFromInt(999)
		p.Quantity = 0

		require.True(t, c.Items[0].Product.Price.Equal(decimal.NewFromInt(150)))
		require.Equal(t, 50, c.Items[0].Product.Quantity)
	})

	t.Run("Remove_IsIdempotent", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))

		c.Remove(1)
		c.Remove(1)
		require.Empty(t, c.Items)
	})

	t.Run("SetQuantity_AbsoluteSet", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))

		require.NoError(t, c.SetQuantity(1, 7))
		require.Equal(t, 7, c.Items[0].Quantity)
	})

	t.Run("SetQuantity_ZeroOrBelowRemovesLine", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))

		require.NoError(t, c.SetQuantity(1, 0))
		require.Empty(t, c.Items)

		require.NoError(t, c.Add(tomato(), 2))
		require.NoError(t, c.SetQuantity(1, -5))
		require.Empty(t, c.Items)
	})

	t.Run("SetQuantity_UnknownLine", func(t *testing.T) {
		c := New("0xbuyer")
		require.ErrorIs(t, c.SetQuantity(42, 3), ErrItemNotFound)
	})

	t.Run("Totals_SumsSnapshotPrices", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))
		require.NoError(t, c.Add(strawberry(), 1))

		inr, eth := c.Totals()
		require.Equal(t, "600.00", inr.StringFixed(2))
		require.Equal(t, "0.008000", eth.StringFixed(6))
	})

	t.Run("EveryLinePositiveAfterMutations", func(t *testing.T) {
		c := New("0xbuyer")
		require.NoError(t, c.Add(tomato(), 2))
		require.NoError(t, c.Add(strawberry(), 4))
		require.NoError(t, c.SetQuantity(2, 0))
		c.Remove(99)
		require.NoError(t, c.Add(strawberry(), 1))

		for _, item := range c.Items {
			require.Positive(t, item.Quantity)
		}
	})
}
