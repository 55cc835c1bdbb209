package interfaces

import (
	"context"

	"catering_ledger/internal/domain/ledger"
)

//go:generate mockgen -source=notification_publisher_interface.go -destination=mocks/mock_notification_publisher_interface.go -package=mock_interfaces

// INotificationPublisher hands SEND_EMAIL intents to whoever delivers mail.
type INotificationPublisher interface {
	Publish(ctx context.Context, intent ledger.Intent) error
}
