package audit

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
	domcheckout "github.com/farmchain/marketplace/internal/domain/checkout"
	domoutbox "github.com/farmchain/marketplace/internal/domain/outbox"
	"github.com/farmchain/marketplace/internal/pkg/logging"
)

// Worker consumes marketplace events and turns them into an audit trail:
// one structured log line and one counter increment per event.
type Worker struct {
	subscriber domoutbox.Subscriber
	events     *prometheus.CounterVec
}

func New(subscriber domoutbox.Subscriber, events *prometheus.CounterVec) *Worker {
	return &Worker{
		subscriber: subscriber,
		events:     events,
	}
}

func (w *Worker) Start() {
	w.subscriber.Subscribe(domcheckout.PurchaseConfirmedEvent{}.EventName(), w.handlePurchaseConfirmed)
	w.subscriber.Subscribe(domcatalog.FarmerRegisteredEvent{}.EventName(), w.handleFarmerRegistered)
	w.subscriber.Subscribe(domcatalog.ProductRegisteredEvent{}.EventName(), w.handleProductRegistered)
}

func (w *Worker) handlePurchaseConfirmed(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(domcheckout.PurchaseConfirmedEvent)
	if !ok {
		return nil
	}

	logging.FromContext(ctx).With(zap.String("component", "audit_worker")).Info("purchase_confirmed",
		zap.Int64("product_id", evt.ProductID),
		zap.String("buyer_address", evt.BuyerAddress),
		zap.String("tx_hash", evt.TxHash),
		zap.Int("remaining", evt.Remaining),
	)
	w.count(evt.EventName())
	return nil
}

func (w *Worker) handleFarmerRegistered(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(domcatalog.FarmerRegisteredEvent)
	if !ok {
		return nil
	}

	logging.FromContext(ctx).With(zap.String("component", "audit_worker")).Info("farmer_registered",
		zap.Int64("farmer_id", evt.FarmerID),
		zap.String("name", evt.Name),
		zap.String("address", evt.Address),
	)
	w.count(evt.EventName())
	return nil
}

func (w *Worker) handleProductRegistered(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(domcatalog.ProductRegisteredEvent)
	if !ok {
		return nil
	}

	logging.FromContext(ctx).With(zap.String("component", "audit_worker")).Info("product_registered",
		zap.Int64("product_id", evt.ProductID),
		zap.String("name", evt.Name),
		zap.String("farmer_address", evt.FarmerAddress),
		zap.Int("quantity", evt.Quantity),
	)
	w.count(evt.EventName())
	return nil
}

func (w *Worker) count(event string) {
	if w.events == nil {
		return
	}
	w.events.WithLabelValues(event).Inc()
}
