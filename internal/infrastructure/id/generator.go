package id

import (
	"strings"

	"github.com/google/uuid"
)

// WalletAddressGenerator synthesizes placeholder wallet addresses for farmers
// who register without one. UUID-backed so uniqueness is guaranteed without
// any cryptographic property.
type WalletAddressGenerator struct{}

func NewWalletAddressGenerator() *WalletAddressGenerator {
	return &WalletAddressGenerator{}
}

// NewAddress returns a hex-style address of the form "0x<32 hex chars>".
func (g *WalletAddressGenerator) NewAddress() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
