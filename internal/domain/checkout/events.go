package checkout

import "time"

// PurchaseConfirmedEvent is emitted after a payment confirmation decrements
// product stock.
type PurchaseConfirmedEvent struct {
	ProductID    int64
	BuyerAddress string
	TxHash       string
	Remaining    int
	OccurredAt   time.Time
}

func (PurchaseConfirmedEvent) EventName() string { return "checkout.purchase_confirmed" }

func NewPurchaseConfirmedEvent(productID int64, buyerAddress, txHash string, remaining int) PurchaseConfirmedEvent {
	return PurchaseConfirmedEvent{
		ProductID:    productID,
		BuyerAddress: buyerAddress,
		TxHash:       txHash,
		Remaining:    remaining,
		OccurredAt:   time.Now().UTC(),
	}
}
