package ledger

import (
	"errors"
	"fmt"

	"catering_ledger/internal/domain/entities"
)

var (
	ErrValidation         = errors.New("booking validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPreconditionFailed = errors.New("transition precondition failed")
)

// ValidationError reports a raw document or record that cannot be used.
// Callers are expected to skip the record, log and continue.
type ValidationError struct {
	RefID  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.RefID == "" {
		return fmt.Sprintf("invalid booking: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid booking %s: %s %s", e.RefID, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidTransitionError means no edge exists between the two statuses.
type InvalidTransitionError struct {
	From entities.BookingStatus
	To   entities.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// Guard identifies which precondition rejected an operation, so a UI can show
// an actionable message.
type Guard string

const (
	GuardReasonRequired    Guard = "reason_required"
	GuardPackageRequired   Guard = "package_required"
	GuardReservationUnpaid Guard = "reservation_unpaid"
	GuardDownpaymentUnpaid Guard = "downpayment_unpaid"
	GuardEventNotPast      Guard = "event_not_past"
	GuardRestoreRequired   Guard = "restore_required"
	GuardNoPaymentRecorded Guard = "no_payment_recorded"
	GuardBookingClosed     Guard = "booking_closed"
	GuardAlreadyPaid       Guard = "already_paid"
	GuardNegativeAmount    Guard = "negative_amount"
	GuardInvariantViolated Guard = "invariant_violated"
	GuardFeeExceedsTotal   Guard = "fee_exceeds_total"
)

// PreconditionFailedError means the edge exists but its guard is false.
type PreconditionFailedError struct {
	Guard  Guard
	Reason string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("precondition %s failed: %s", e.Guard, e.Reason)
}

func (e *PreconditionFailedError) Is(target error) bool { return target == ErrPreconditionFailed }

func preconditionFailed(g Guard, format string, args ...any) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: g, Reason: fmt.Sprintf(format, args...)}
}

// AggregationSkipped is a non-fatal warning: the record was left out of the
// portfolio sums.
type AggregationSkipped struct {
	RefID  string `json:"ref_id"`
	Reason string `json:"reason"`
}

func (w AggregationSkipped) String() string {
	return fmt.Sprintf("%s skipped: %s", w.RefID, w.Reason)
}
