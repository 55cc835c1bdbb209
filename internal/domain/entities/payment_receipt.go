package entities

import (
	"encoding/json"
	"time"
)

// PaymentStage names which billing milestone a payment settles.

type PaymentStage string

const (
	PaymentStageReservation  PaymentStage = "reservation"
	PaymentStageFiftyPercent PaymentStage = "fifty_percent"
	PaymentStageFull         PaymentStage = "full"
)

func (s PaymentStage) Valid() bool {
	switch s {
	case PaymentStageReservation, PaymentStageFiftyPercent, PaymentStageFull:
		return true
	}
	return false
}

// ReceiptStatus represents the payment provider outcome.

type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusApproved ReceiptStatus = "approved"
	ReceiptStatusRejected ReceiptStatus = "rejected"
)

// PaymentReceipt is a payment collected through the gateway for one stage of a booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ref_id-index): ref_id
//
// MercadoPago payload:
//   - ProviderPayloadRaw keeps the provider response body for audit.
//   - ProviderPayload is the parsed form, when the body was a JSON object.

type PaymentReceipt struct {
	ID     string        `json:"id"`
	RefID  string        `json:"ref_id"`
	Stage  PaymentStage  `json:"stage"`
	Amount Money         `json:"amount"`
	Date   time.Time     `json:"date"`
	Status ReceiptStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
