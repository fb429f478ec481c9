package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/farmchain/marketplace/internal/domain/cart"
	"github.com/farmchain/marketplace/internal/domain/catalog"
)

func TestCartRepository(t *testing.T) {
	ctx := context.Background()

	product := &catalog.Product{
		ID:       1,
		Name:     "Organic Tomatoes",
		Price:    decimal.NewFromInt(150),
		Quantity: 50,
	}

	t.Run("Get_UnknownBuyerReturnsEmptyCart", func(t *testing.T) {
		repo := NewCartRepository()

		c, err := repo.Get(ctx, "0xnobody")
		require.NoError(t, err)
		require.Empty(t, c.Items)

		known, err := repo.Exists(ctx, "0xnobody")
		require.NoError(t, err)
		require.False(t, known)
	})

	t.Run("Update_CreatesEntryAndPersists", func(t *testing.T) {
		repo := NewCartRepository()

		_, err := repo.Update(ctx, "0xbuyer", func(c *cart.Cart) error {
			return c.Add(product, 2)
		})
		require.NoError(t, err)

		known, err := repo.Exists(ctx, "0xbuyer")
		require.NoError(t, err)
		require.True(t, known)

		c, err := repo.Get(ctx, "0xbuyer")
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
	})

	t.Run("Update_ErrorLeavesCartUnchanged", func(t *testing.T) {
		repo := NewCartRepository()

		_, err := repo.Update(ctx, "0xbuyer", func(c *cart.Cart) error {
			return c.Add(product, 2)
		})
		require.NoError(t, err)

		sentinel := errors.New("nope")
		_, err = repo.Update(ctx, "0xbuyer", func(c *cart.Cart) error {
			c.Clear()
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		c, err := repo.Get(ctx, "0xbuyer")
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
	})

	t.Run("Get_ReturnsIndependentCopy", func(t *testing.T) {
		repo := NewCartRepository()

		_, err := repo.Update(ctx, "0xbuyer", func(c *cart.Cart) error {
			return c.Add(product, 2)
		})
		require.NoError(t, err)

		c, err := repo.Get(ctx, "0xbuyer")
		require.NoError(t, err)
		c.Items[0].Quantity = 99

		again, err := repo.Get(ctx, "0xbuyer")
		require.NoError(t, err)
		require.Equal(t, 2, again.Items[0].Quantity)
	})
}
