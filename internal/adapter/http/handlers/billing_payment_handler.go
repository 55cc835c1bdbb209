package handlers

import (
	response "catering_ledger/internal/adapter/http/dto/response"
	"catering_ledger/internal/config"
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase"
	"catering_ledger/pkg"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for gateway collections.

type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// CreatePayment charges one payment stage of a booking through Mercado Pago.
//
// @Summary Collect payment stage
// @Tags payments
// @Accept json
// @Produce json
// @Param body body request.BillingPaymentCreateRequest true "payload"
// @Param ref_id path string true "ref_id"
// @Param stage path string true "stage"
// @Success 200 {object} response.PaymentReceiptResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /payments/{ref_id}/{stage} [post]
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	refID := c.Param("ref_id")
	stage := entities.PaymentStage(strings.ToLower(strings.TrimSpace(c.Param("stage"))))
	log.Printf("[payment][handler] create start ref_id=%s stage=%s", refID, stage)
	mockMode := config.PaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload ref_id=%s err=%v", refID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload ref_id=%s err=%v", refID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), refID, stage, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed ref_id=%s stage=%s err=%v", refID, stage, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success ref_id=%s payment_id=%s status=%s", refID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPaymentReceipt(created))
}

// ListPayments returns every receipt stored for a booking, latest first.
//
// @Summary List booking payments
// @Tags payments
// @Produce json
// @Param ref_id path string true "ref_id"
// @Success 200 {array} response.PaymentReceiptResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /payments/{ref_id} [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	refID := c.Param("ref_id")
	receipts, err := h.usecase.ListByRefID(c.Request.Context(), refID)
	if err != nil {
		log.Printf("[payment][handler] list failed ref_id=%s err=%v", refID, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReceipts(receipts))
}

// @Summary Get payment receipt
// @Tags payments
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} response.PaymentReceiptResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /payment-receipts/{id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	receipt, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReceipt(receipt))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "Nothing left to collect for this stage", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentReceiptNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound), errors.Is(err, usecase.ErrInvalidRefID),
		errors.Is(err, usecase.ErrInvalidPaymentStage), errors.Is(err, usecase.ErrBookingConflict),
		errors.Is(err, ledger.ErrValidation), errors.Is(err, ledger.ErrInvalidTransition),
		errors.Is(err, ledger.ErrPreconditionFailed):
		return mapBookingError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
