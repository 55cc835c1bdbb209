package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"catering_ledger/internal/config"
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=billing_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_billing_payment_usecase.go -package=mocks

var (
	ErrPaymentReceiptNotFound         = errors.New("payment receipt not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNothingToCollect               = errors.New("nothing left to collect for this stage")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// gatewayActor is the timeline actor for stages settled through the gateway.
const gatewayActor = "mercadopago"

// IBillingPaymentUseCase collects booking payment stages through the payment
// gateway.
//
// A collection charges exactly what the stage is worth on the booking right
// now, stores the provider receipt and, once the provider approves, marks the
// stage as paid on the booking.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, refID string, stage entities.PaymentStage, mpPayload json.RawMessage) (entities.PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error)
	ListByRefID(ctx context.Context, refID string) ([]entities.PaymentReceipt, error)
}

type BillingPaymentUseCase struct {
	repo     interfaces.IPaymentReceiptRepository
	bookings IBookingUseCase
	gateway  interfaces.IPaymentGateway
	now      func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IPaymentReceiptRepository, bookings IBookingUseCase, gateway interfaces.IPaymentGateway) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, bookings: bookings, gateway: gateway, now: time.Now}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, refID string, stage entities.PaymentStage, mpPayload json.RawMessage) (entities.PaymentReceipt, error) {
	log.Printf("[payment][usecase] collect start raw_ref_id=%q stage=%s payload_len=%d", refID, stage, len(mpPayload))
	mockMode := config.PaymentGatewayMockEnabled()
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.PaymentReceipt{}, ErrInvalidRefID
	}
	if !stage.Valid() {
		return entities.PaymentReceipt{}, ErrInvalidPaymentStage
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload ref_id=%s", refID)
			return entities.PaymentReceipt{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if !mockMode && u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured ref_id=%s", refID)
		return entities.PaymentReceipt{}, ErrPaymentGatewayNotConfigured
	}

	booking, err := u.bookings.GetByRefID(ctx, refID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking ref_id=%s err=%v", refID, err)
		return entities.PaymentReceipt{}, err
	}
	// Refuse before charging anything the ledger would not accept afterwards.
	if _, err := ledger.RecordStagePayment(booking, stage, gatewayActor, u.now()); err != nil {
		log.Printf("[payment][usecase] stage refused ref_id=%s stage=%s err=%v", refID, stage, err)
		return entities.PaymentReceipt{}, err
	}
	amount := ledger.StageAmount(booking, stage)
	if !amount.IsPositive() {
		log.Printf("[payment][usecase] nothing to collect ref_id=%s stage=%s", refID, stage)
		return entities.PaymentReceipt{}, ErrNothingToCollect
	}
	log.Printf("[payment][usecase] booking loaded ref_id=%s status=%s amount=%s", refID, booking.Status, amount)

	mpPayload, err = enrichPayload(mpPayload, booking, stage, amount, mockMode)
	if err != nil {
		log.Printf("[payment][usecase] payload rejected ref_id=%s err=%v", refID, err)
		return entities.PaymentReceipt{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway ref_id=%s", refID)
		providerPaymentID, providerStatus, providerResp, err = mockApproval(mpPayload, u.now())
		if err != nil {
			return entities.PaymentReceipt{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed ref_id=%s err=%v", refID, err)
			return entities.PaymentReceipt{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success ref_id=%s provider_payment_id=%s provider_status=%s", refID, providerPaymentID, providerStatus)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed ref_id=%s err=%v", refID, err)
	}
	receipt := entities.PaymentReceipt{
		ID:                 providerPaymentID,
		RefID:              refID,
		Stage:              stage,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             receiptStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, receipt)
	if err != nil {
		log.Printf("[payment][usecase] receipt create failed ref_id=%s payment_id=%s err=%v", refID, receipt.ID, err)
		return entities.PaymentReceipt{}, err
	}

	if created.Status != entities.ReceiptStatusApproved {
		log.Printf("[payment][usecase] payment not approved; stage left open ref_id=%s payment_id=%s status=%s", refID, created.ID, created.Status)
		return created, nil
	}
	if _, err := u.bookings.RecordPayment(ctx, refID, stage, gatewayActor); err != nil {
		log.Printf("[payment][usecase] stage not recorded after approved payment; reconcile manually ref_id=%s payment_id=%s err=%v", refID, created.ID, err)
		return created, err
	}
	log.Printf("[payment][usecase] collect success ref_id=%s stage=%s payment_id=%s", refID, stage, created.ID)
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentReceipt{}, ErrPaymentReceiptNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if p.ID == "" {
		return entities.PaymentReceipt{}, ErrPaymentReceiptNotFound
	}
	return p, nil
}

// ListByRefID returns the receipts of a booking, latest first.
func (u *BillingPaymentUseCase) ListByRefID(ctx context.Context, refID string) ([]entities.PaymentReceipt, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return nil, ErrInvalidRefID
	}
	receipts, err := u.repo.ListByRefID(ctx, refID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(receipts, func(i, j int) bool { return receipts[i].Date.After(receipts[j].Date) })
	return receipts, nil
}

// enrichPayload links the provider request to the booking. The amount always
// comes from the ledger, never from the caller.
func enrichPayload(raw json.RawMessage, booking entities.BookingRecord, stage entities.PaymentStage, amount entities.Money, mockMode bool) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		if !mockMode {
			return nil, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidMPPayload
		}
		normalizeSandboxPayerFromUserID(req)
		ensurePayerDefaults(req, booking.Client.Email)
		if !hasPayer(req) {
			return nil, ErrInvalidMPPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = booking.RefID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Booking %s %s payment", booking.RefID, stage)
	}
	req["transaction_amount"] = amount.Decimal().InexactFloat64()
	return json.Marshal(req)
}

func mockApproval(payload json.RawMessage, now time.Time) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	id := uuid.NewString()
	ts := now.UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func receiptStatus(providerStatus string) entities.ReceiptStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.ReceiptStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.ReceiptStatusRejected
	default:
		return entities.ReceiptStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email when neither id nor email was sent:
// first from the booking's client, then from the sandbox settings.
func ensurePayerDefaults(m map[string]any, clientEmail string) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(clientEmail) != "":
		payer["email"] = strings.TrimSpace(clientEmail)
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"):
		payer["email"] = "test_user_ph@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps a configured sandbox user id for its
// email, which is what the sandbox accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" || strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

var gatewayErrorMarkers = []struct {
	err     error
	markers []string
}{
	{ErrPaymentGatewayCustomerNotFound, []string{"customer not found", `"code":2002`}},
	{ErrPaymentGatewayInvalidUsers, []string{"invalid users involved", `"code":2034`}},
	{ErrPaymentGatewayUnauthorized, []string{`"error":"unauthorized"`, `"status":401`}},
	{ErrPaymentGatewayBadRequest, []string{`"error":"bad_request"`, `"status":400`}},
}

// classifyGatewayError maps provider failures onto sentinels by inspecting
// the SDK's error text; the SDK exposes no typed errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, c := range gatewayErrorMarkers {
		for _, m := range c.markers {
			if strings.Contains(msg, m) {
				return fmt.Errorf("%w: %v", c.err, err)
			}
		}
	}
	return err
}
