package response

import (
	"time"

	"catering_ledger/internal/domain/entities"
)

type PaymentReceiptResponse struct {
	PaymentID string         `json:"payment_id"`
	RefID     string         `json:"ref_id"`
	Stage     string         `json:"stage"`
	Amount    entities.Money `json:"amount"`
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromPaymentReceipt(p entities.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		PaymentID:    p.ID,
		RefID:        p.RefID,
		Stage:        string(p.Stage),
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromPaymentReceipts(ps []entities.PaymentReceipt) []PaymentReceiptResponse {
	out := make([]PaymentReceiptResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPaymentReceipt(p))
	}
	return out
}
