package notification

import (
	"context"

	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pubsubNotifier implements the Notifier port by handing order events to the
// event bus. The API process uses this implementation so request latency
// never includes an FCM round trip; the order worker consumes the events and
// performs the actual push delivery.
type pubsubNotifier struct {
	publisher service.EventPublisher
}

// NewPubSubNotifier creates a Notifier backed by the event publisher.
func NewPubSubNotifier(publisher service.EventPublisher) service.Notifier {
	return &pubsubNotifier{publisher: publisher}
}

// NotifyBuyer queues a buyer-facing message for async delivery.
func (n *pubsubNotifier) NotifyBuyer(ctx context.Context, buyerID uuid.UUID, message string) error {
	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.OrderEventBuyerMessage,
		BuyerID:   buyerID.String(),
		Message:   message,
	}

	if err := n.publisher.PublishOrderEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish buyer message event")
	}

	return nil
}

// NotifySeller queues a seller-facing message for async delivery.
func (n *pubsubNotifier) NotifySeller(ctx context.Context, storeID uuid.UUID, message string) error {
	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.OrderEventSellerMessage,
		StoreID:   storeID.String(),
		Message:   message,
	}

	if err := n.publisher.PublishOrderEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish seller message event")
	}

	return nil
}
