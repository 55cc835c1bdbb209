package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for collecting a booking stage
// through Mercado Pago.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; the amount and external reference are always set server-side.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
