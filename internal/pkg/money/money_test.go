package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatINR(t *testing.T) {
	require.Equal(t, "₹150.00", FormatINR(decimal.NewFromInt(150)))
	require.Equal(t, "₹600.00", FormatINR(decimal.NewFromInt(600)))
	require.Equal(t, "₹80.50", FormatINR(decimal.RequireFromString("80.5")))
}

func TestFormatETH(t *testing.T) {
	require.Equal(t, "0.002000", FormatETH(decimal.RequireFromString("0.002")))
	require.Equal(t, "0.000000", FormatETH(decimal.Zero))
}

func TestParseINR(t *testing.T) {
	t.Run("WithGlyph", func(t *testing.T) {
		d, err := ParseINR("₹150")
		require.NoError(t, err)
		require.Equal(t, "150", d.String())
	})

	t.Run("WithoutGlyph", func(t *testing.T) {
		d, err := ParseINR("80.5")
		require.NoError(t, err)
		require.Equal(t, "80.5", d.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseINR("₹abc")
		require.ErrorIs(t, err, ErrInvalidAmount)

		_, err = ParseINR("")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestETHEquivalent(t *testing.T) {
	eth := ETHEquivalent(decimal.NewFromInt(150))
	require.Equal(t, "0.001800", eth.StringFixed(6))

	eth = ETHEquivalent(decimal.NewFromInt(250))
	require.Equal(t, "0.003000", eth.StringFixed(6))
}
