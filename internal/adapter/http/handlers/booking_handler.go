package handlers

import (
	request "catering_ledger/internal/adapter/http/dto/request"
	response "catering_ledger/internal/adapter/http/dto/response"
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase"
	"catering_ledger/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

const defaultActor = "admin"

// BookingHandler serves booking intake and the admin write-back routes.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking registers a customer inquiry as a Pending booking.
//
// @Summary Create booking inquiry
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body request.BookingCreateRequest true "payload"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[booking][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateInquiry(c.Request.Context(), in)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(created))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} response.BookingListResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	snap, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingSnapshot(snap.Records, snap.Skipped))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param ref_id path string true "ref_id"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings/{ref_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByRefID(c.Request.Context(), c.Param("ref_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// TransitionBooking moves a booking to the requested status and reports the
// side effects that followed.
//
// @Summary Change booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body request.BookingStatusRequest true "payload"
// @Param ref_id path string true "ref_id"
// @Success 200 {object} response.TransitionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings/{ref_id}/status [patch]
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	refID := c.Param("ref_id")
	var payload request.BookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if cmd.Actor == "" {
		cmd.Actor = defaultActor
	}
	log.Printf("[booking][handler] transition ref_id=%s target=%s actor=%s", refID, cmd.Target, cmd.Actor)

	res, err := h.usecase.Transition(c.Request.Context(), refID, cmd)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransition(res))
}

// RecordPayment marks a payment stage as received outside the gateway
// (cash, bank transfer).
//
// @Summary Mark payment stage as paid
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body request.PaymentStageRequest false "payload"
// @Param ref_id path string true "ref_id"
// @Param stage path string true "stage"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings/{ref_id}/payments/{stage} [post]
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	refID := c.Param("ref_id")
	stage := entities.PaymentStage(strings.ToLower(strings.TrimSpace(c.Param("stage"))))
	var payload request.PaymentStageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
			return
		}
	}
	actor := strings.TrimSpace(payload.Actor)
	if actor == "" {
		actor = defaultActor
	}

	b, err := h.usecase.RecordPayment(c.Request.Context(), refID, stage, actor)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// @Summary Set operational cost
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body request.OperationalCostRequest true "payload"
// @Param ref_id path string true "ref_id"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /bookings/{ref_id}/operational-cost [patch]
func (h *BookingHandler) SetOperationalCost(c *gin.Context) {
	var payload request.OperationalCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	actor := strings.TrimSpace(payload.Actor)
	if actor == "" {
		actor = defaultActor
	}

	b, err := h.usecase.SetOperationalCost(c.Request.Context(), c.Param("ref_id"), *payload.Amount, actor)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func mapBookingError(err error) *pkg.AppError {
	var (
		ve *ledger.ValidationError
		it *ledger.InvalidTransitionError
		pf *ledger.PreconditionFailedError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidRefID), errors.Is(err, usecase.ErrInvalidPaymentStage),
		errors.Is(err, request.ErrInvalidStatus), errors.Is(err, request.ErrInvalidEventDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBooking):
		return pkg.NewDomainError("INVALID_BOOKING", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &ve):
		return pkg.NewDomainError("INVALID_BOOKING", "Stored booking is invalid", err, http.StatusBadRequest).
			WithDetail("field", ve.Field).WithDetail("reason", ve.Reason)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.As(err, &it):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict).
			WithDetail("from", it.From).WithDetail("to", it.To)
	case errors.Is(err, usecase.ErrBookingConflict):
		return pkg.NewDomainErrorSimple("BOOKING_CONFLICT", "Booking was modified by another request; reload and retry", http.StatusConflict)
	case errors.As(err, &pf):
		return pkg.NewDomainError("PRECONDITION_FAILED", pf.Reason, err, http.StatusUnprocessableEntity).
			WithDetail("guard", pf.Guard)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
