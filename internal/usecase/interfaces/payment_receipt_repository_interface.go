package interfaces

import (
	"context"

	"catering_ledger/internal/domain/entities"
)

//go:generate mockgen -source=payment_receipt_repository_interface.go -destination=mocks/mock_payment_receipt_repository_interface.go -package=mock_interfaces

// IPaymentReceiptRepository abstracts DynamoDB persistence for PaymentReceipt.

type IPaymentReceiptRepository interface {
	Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error)
	ListByRefID(ctx context.Context, refID string) ([]entities.PaymentReceipt, error)
}
