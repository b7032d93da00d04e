// Package notification contains push-delivery implementations of the
// Notifier port.
package notification

import (
	"context"
	"fmt"

	"mazza/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// fcmNotifier delivers messages over Firebase Cloud Messaging topics. Each
// buyer and store has a deterministic topic name, so delivery needs no
// device-token registry: clients subscribe to their own topic on login.
type fcmNotifier struct {
	client *messaging.Client
}

// NewFCMNotifier creates a topic-based FCM notifier.
func NewFCMNotifier(ctx context.Context, credentialsPath string) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmNotifier{
		client: client,
	}, nil
}

// BuyerTopic returns the FCM topic carrying a buyer's order updates.
func BuyerTopic(buyerID uuid.UUID) string {
	return "buyer-" + buyerID.String()
}

// StoreTopic returns the FCM topic carrying a store's incoming orders.
func StoreTopic(storeID uuid.UUID) string {
	return "store-" + storeID.String()
}

// NotifyBuyer pushes a message to the buyer's topic.
func (n *fcmNotifier) NotifyBuyer(ctx context.Context, buyerID uuid.UUID, message string) error {
	return n.sendToTopic(ctx, BuyerTopic(buyerID), "Order update", message)
}

// NotifySeller pushes a message to the store's topic.
func (n *fcmNotifier) NotifySeller(ctx context.Context, storeID uuid.UUID, message string) error {
	return n.sendToTopic(ctx, StoreTopic(storeID), "New order activity", message)
}

func (n *fcmNotifier) sendToTopic(ctx context.Context, topic, title, body string) error {
	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := n.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification to topic %s: %w", topic, err)
	}

	return nil
}
