package ledger

import (
	"fmt"
	"strings"
	"time"

	"catering_ledger/internal/domain/entities"
)

// IntentKind is the kind of side effect a caller must carry out after a
// successful transition.
type IntentKind string

const (
	IntentPatchStatus IntentKind = "PATCH_STATUS"
	IntentSendEmail   IntentKind = "SEND_EMAIL"
)

type EmailTemplate string

const (
	EmailConfirmation       EmailTemplate = "confirmation"
	EmailRejection          EmailTemplate = "rejection"
	EmailProposal           EmailTemplate = "proposal"
	EmailReservationReceipt EmailTemplate = "reservation_receipt"
	EmailPaymentReceipt     EmailTemplate = "payment_receipt"
	EmailThankYou           EmailTemplate = "thank_you"
)

// Intent describes work for the caller. The engine itself performs no I/O.
type Intent struct {
	Kind      IntentKind             `json:"kind"`
	RefID     string                 `json:"ref_id"`
	NewStatus entities.BookingStatus `json:"new_status,omitempty"`
	Template  EmailTemplate          `json:"template,omitempty"`
	Recipient string                 `json:"recipient,omitempty"`
	Reason    string                 `json:"reason,omitempty"`
}

// TransitionContext carries everything a guard may need besides the record.
type TransitionContext struct {
	Actor    string
	Reason   string
	Packages []string
	Restore  bool
	Now      time.Time
}

type TransitionResult struct {
	Record  entities.BookingRecord
	Effects []Intent
}

type guardFunc func(r entities.BookingRecord, ctx TransitionContext) error

type edge struct {
	guard guardFunc
	email EmailTemplate
}

var (
	toRejected = edge{guard: requireReason, email: EmailRejection}
	toReserved = edge{guard: requireReservationPaid, email: EmailReservationReceipt}
)

// transitions holds the legal edges. Rejection from the remaining
// non-terminal states is added in init.
var transitions = map[entities.BookingStatus]map[entities.BookingStatus]edge{
	entities.BookingStatusPending: {
		entities.BookingStatusConfirmed: {guard: requireReservationPaid, email: EmailConfirmation},
		entities.BookingStatusRejected:  toRejected,
	},
	entities.BookingStatusConfirmed: {
		entities.BookingStatusProposalSent: {guard: requirePackage, email: EmailProposal},
	},
	entities.BookingStatusProposalSent: {
		entities.BookingStatusReserved:  toReserved,
		entities.BookingStatusVerifying: {guard: requireReservationPaid},
	},
	entities.BookingStatusReserved: {
		entities.BookingStatusPaid: {guard: requireDownpayment, email: EmailPaymentReceipt},
	},
	entities.BookingStatusPaid: {
		entities.BookingStatusCompleted: {guard: requireEventPast, email: EmailThankYou},
	},
	entities.BookingStatusRejected: {
		entities.BookingStatusPending: {guard: requireRestore},
	},
}

func init() {
	for _, s := range entities.AllBookingStatuses {
		if s.Terminal() {
			continue
		}
		if transitions[s] == nil {
			transitions[s] = map[entities.BookingStatus]edge{}
		}
		transitions[s][entities.BookingStatusRejected] = toRejected
	}
}

// CanTransition reports whether an edge exists, ignoring guards.
func CanTransition(from, to entities.BookingStatus) bool {
	_, ok := transitions[from][to]
	return ok
}

// AllowedTargets lists the statuses reachable from s in lifecycle order.
func AllowedTargets(s entities.BookingStatus) []entities.BookingStatus {
	out := make([]entities.BookingStatus, 0, len(transitions[s]))
	for _, candidate := range entities.AllBookingStatuses {
		if CanTransition(s, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

// ApplyTransition moves record to target if an edge exists and its guard
// holds. The input is not modified. On success the returned record carries
// the new status and an audit entry, and Effects lists the intents the caller
// must execute once the record is persisted.
func ApplyTransition(record entities.BookingRecord, target entities.BookingStatus, ctx TransitionContext) (TransitionResult, error) {
	if !record.Status.Valid() {
		panic(fmt.Sprintf("ledger: record %s has unknown status %q", record.RefID, record.Status))
	}
	e, ok := transitions[record.Status][target]
	if !ok {
		return TransitionResult{}, &InvalidTransitionError{From: record.Status, To: target}
	}
	if ctx.Now.IsZero() {
		ctx.Now = time.Now()
	}
	ctx.Reason = strings.TrimSpace(ctx.Reason)
	if e.guard != nil {
		if err := e.guard(record, ctx); err != nil {
			return TransitionResult{}, err
		}
	}

	out := record.Clone()
	out.Status = target
	switch {
	case target == entities.BookingStatusRejected:
		out.RejectionReason = ctx.Reason
	case record.Status == entities.BookingStatusRejected:
		out.RejectionReason = ""
	}
	if pkgs := cleanPackages(ctx.Packages); len(pkgs) > 0 {
		out.Packages = pkgs
	}
	out = appendTimeline(out, ctx.Actor, ctx.Now, describeTransition(record.Status, target, ctx))
	if err := out.Validate(); err != nil {
		return TransitionResult{}, preconditionFailed(GuardInvariantViolated, "%v", err)
	}

	effects := []Intent{{Kind: IntentPatchStatus, RefID: out.RefID, NewStatus: target}}
	if e.email != "" {
		effects = append(effects, Intent{
			Kind:      IntentSendEmail,
			RefID:     out.RefID,
			NewStatus: target,
			Template:  e.email,
			Recipient: out.Client.Email,
			Reason:    out.RejectionReason,
		})
	}
	return TransitionResult{Record: out, Effects: effects}, nil
}

func describeTransition(from, to entities.BookingStatus, ctx TransitionContext) string {
	switch {
	case to == entities.BookingStatusRejected:
		return fmt.Sprintf("Status changed from %s to %s: %s", from, to, ctx.Reason)
	case from == entities.BookingStatusRejected:
		return fmt.Sprintf("Booking restored from %s to %s", from, to)
	default:
		return fmt.Sprintf("Status changed from %s to %s", from, to)
	}
}

func requireReason(_ entities.BookingRecord, ctx TransitionContext) error {
	if ctx.Reason == "" {
		return preconditionFailed(GuardReasonRequired, "a rejection reason is required")
	}
	return nil
}

func requireReservationPaid(r entities.BookingRecord, _ TransitionContext) error {
	if !r.Billing.ReservationStatus.IsPaid() {
		return preconditionFailed(GuardReservationUnpaid, "reservation fee has not been recorded as paid")
	}
	return nil
}

func requirePackage(r entities.BookingRecord, ctx TransitionContext) error {
	if len(cleanPackages(ctx.Packages)) == 0 && len(cleanPackages(r.Packages)) == 0 {
		return preconditionFailed(GuardPackageRequired, "select at least one package option before sending a proposal")
	}
	return nil
}

func requireDownpayment(r entities.BookingRecord, _ TransitionContext) error {
	if !r.Billing.FiftyPercentStatus.IsPaid() && !r.Billing.FullPaymentStatus.IsPaid() {
		return preconditionFailed(GuardDownpaymentUnpaid, "neither the fifty percent nor the full payment has been recorded")
	}
	return nil
}

func requireEventPast(r entities.BookingRecord, ctx TransitionContext) error {
	today := entities.CalendarDateOf(ctx.Now)
	if r.Event.Date.IsZero() || !r.Event.Date.Before(today) {
		return preconditionFailed(GuardEventNotPast, "event date %s is not in the past", r.Event.Date)
	}
	return nil
}

func requireRestore(_ entities.BookingRecord, ctx TransitionContext) error {
	if !ctx.Restore {
		return preconditionFailed(GuardRestoreRequired, "reopening a rejected booking needs an explicit restore")
	}
	return nil
}

func cleanPackages(in []string) []string {
	var out []string
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
