package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeGlyph prefixes every INR amount on the wire.
const RupeeGlyph = "₹"

// INRToETHRate converts a rupee amount into its ETH equivalent.
var INRToETHRate = decimal.RequireFromString("0.000012")

var ErrInvalidAmount = errors.New("money: invalid amount")

// FormatINR renders a rupee amount with the currency glyph and two decimals,
// e.g. "₹150.00".
func FormatINR(amount decimal.Decimal) string {
	return RupeeGlyph + amount.StringFixed(2)
}

// FormatETH renders an ETH amount with six decimals, e.g. "0.001800".
func FormatETH(amount decimal.Decimal) string {
	return amount.StringFixed(6)
}

// ParseINR accepts a rupee amount with or without the glyph prefix.
func ParseINR(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), RupeeGlyph))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseETH parses a plain decimal ETH amount.
func ParseETH(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ETHEquivalent derives the ETH price from a rupee price at the fixed rate.
func ETHEquivalent(inr decimal.Decimal) decimal.Decimal {
	return inr.Mul(INRToETHRate)
}
