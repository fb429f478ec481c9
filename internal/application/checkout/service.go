package checkout

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
	domcheckout "github.com/farmchain/marketplace/internal/domain/checkout"
	domoutbox "github.com/farmchain/marketplace/internal/domain/outbox"
	"github.com/farmchain/marketplace/internal/pkg/logging"
)

// Service is the payment-confirmation entry point. Each confirmation
// decrements the product's stock by exactly one unit, independent of any
// cart line quantity. Cart cleanup after a purchase is the caller's
// responsibility.
type Service struct {
	catalog   domcatalog.Repository
	publisher domoutbox.Publisher
}

func NewService(catalog domcatalog.Repository, publisher domoutbox.Publisher) *Service {
	return &Service{
		catalog:   catalog,
		publisher: publisher,
	}
}

type ConfirmPurchaseInput struct {
	ProductID    int64
	BuyerAddress string
	TxHash       string
	Amount       string
}

type ConfirmPurchaseResult struct {
	Receipt domcheckout.Receipt
	Product *domcatalog.Product
}

// ConfirmPurchase atomically checks and decrements the product's stock and
// returns a receipt for the confirmation token. The check-then-decrement is
// a single critical section in the catalog store, so two confirmations
// racing for the last unit cannot both succeed.
func (s *Service) ConfirmPurchase(ctx context.Context, in ConfirmPurchaseInput) (*ConfirmPurchaseResult, error) {
	p, err := s.catalog.AdjustQuantity(ctx, in.ProductID, -1)
	if err != nil {
		return nil, fmt.Errorf("checkout: confirm purchase: %w", err)
	}

	receipt := domcheckout.Receipt{
		Hash:         in.TxHash,
		ProductID:    in.ProductID,
		BuyerAddress: in.BuyerAddress,
		Amount:       in.Amount,
		Timestamp:    time.Now().UTC(),
		Verified:     true,
	}

	if s.publisher != nil {
		evt := domcheckout.NewPurchaseConfirmedEvent(in.ProductID, in.BuyerAddress, in.TxHash, p.Quantity)
		if pubErr := s.publisher.Publish(ctx, evt); pubErr != nil {
			// The decrement already happened; a lost event only costs audit trail.
			logging.FromContext(ctx).Warn("purchase_event_publish_failed",
				zap.Int64("product_id", in.ProductID),
				zap.Error(pubErr),
			)
		}
	}

	return &ConfirmPurchaseResult{
		Receipt: receipt,
		Product: p,
	}, nil
}
