package ledger

import (
	"fmt"
	"time"

	"catering_ledger/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentBadge is the single payment stage shown next to a booking.
type PaymentBadge string

const (
	BadgeUnpaid           PaymentBadge = "Unpaid"
	BadgeReservationPaid  PaymentBadge = "Reservation Paid"
	BadgeFiftyPercentPaid PaymentBadge = "50% Paid"
	BadgeFullyPaid        PaymentBadge = "Fully Paid"
)

// Downpayment is the amount the fifty-percent stage adds on top of the
// reservation fee: whatever brings the collected total to half the contract.
func Downpayment(r entities.BookingRecord) entities.Money {
	b := r.Billing
	return entities.MaxMoney(b.TotalCost.Half().Sub(b.ReservationFee), 0)
}

// AmountPaid derives what the client has paid from the stage flags alone.
// Status is never consulted.
func AmountPaid(r entities.BookingRecord) entities.Money {
	b := r.Billing
	if b.FullPaymentStatus.IsPaid() {
		return b.TotalCost
	}
	var paid entities.Money
	if b.ReservationStatus.IsPaid() {
		paid = paid.Add(b.ReservationFee)
	}
	if b.FiftyPercentStatus.IsPaid() {
		paid = paid.Add(Downpayment(r))
	}
	return entities.MinMoney(paid, b.TotalCost)
}

// BalanceDue is what remains on the contract; zero once fully paid.
func BalanceDue(r entities.BookingRecord) entities.Money {
	if r.Billing.FullPaymentStatus.IsPaid() {
		return 0
	}
	return entities.MaxMoney(r.Billing.TotalCost.Sub(AmountPaid(r)), 0)
}

// NetProfit is TotalCost minus OperationalCost. ok is false while no
// operational cost has been entered, which is not the same as a zero margin.
func NetProfit(r entities.BookingRecord) (profit entities.Money, ok bool) {
	if !r.Billing.OperationalCost.IsPositive() {
		return 0, false
	}
	return r.Billing.TotalCost.Sub(r.Billing.OperationalCost), true
}

// MarginPercent is NetProfit / TotalCost * 100, rounded to one decimal place.
func MarginPercent(r entities.BookingRecord) (float64, bool) {
	profit, ok := NetProfit(r)
	if !ok || r.Billing.TotalCost.IsZero() {
		return 0, false
	}
	pct := decimal.NewFromInt(profit.Cents()).
		Div(decimal.NewFromInt(r.Billing.TotalCost.Cents())).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := pct.Float64()
	return f, true
}

// PaymentStageBadge picks the highest stage whose flag is set:
// full, then fifty percent, then reservation.
func PaymentStageBadge(r entities.BookingRecord) PaymentBadge {
	b := r.Billing
	switch {
	case b.FullPaymentStatus.IsPaid():
		return BadgeFullyPaid
	case b.FiftyPercentStatus.IsPaid():
		return BadgeFiftyPercentPaid
	case b.ReservationStatus.IsPaid():
		return BadgeReservationPaid
	default:
		return BadgeUnpaid
	}
}

// BillingSummary bundles every per-record figure for API responses.
type BillingSummary struct {
	TotalCost       entities.Money  `json:"total_cost"`
	AddOnsTotal     entities.Money  `json:"add_ons_total"`
	AmountPaid      entities.Money  `json:"amount_paid"`
	BalanceDue      entities.Money  `json:"balance_due"`
	Downpayment     entities.Money  `json:"downpayment"`
	NetProfit       *entities.Money `json:"net_profit"`
	MarginPercent   *float64        `json:"margin_percent"`
	PaymentBadge    PaymentBadge    `json:"payment_badge"`
	OperationalCost entities.Money  `json:"operational_cost"`
}

func Summarize(r entities.BookingRecord) BillingSummary {
	s := BillingSummary{
		TotalCost:       r.Billing.TotalCost,
		AddOnsTotal:     r.AddOnsTotal(),
		AmountPaid:      AmountPaid(r),
		BalanceDue:      BalanceDue(r),
		Downpayment:     Downpayment(r),
		PaymentBadge:    PaymentStageBadge(r),
		OperationalCost: r.Billing.OperationalCost,
	}
	if p, ok := NetProfit(r); ok {
		s.NetProfit = &p
	}
	if m, ok := MarginPercent(r); ok {
		s.MarginPercent = &m
	}
	return s
}

// StageAmount is what collecting the given stage would charge right now.
func StageAmount(r entities.BookingRecord, stage entities.PaymentStage) entities.Money {
	switch stage {
	case entities.PaymentStageReservation:
		return entities.MinMoney(r.Billing.ReservationFee, r.Billing.TotalCost)
	case entities.PaymentStageFiftyPercent:
		return Downpayment(r)
	case entities.PaymentStageFull:
		return BalanceDue(r)
	default:
		panic(fmt.Sprintf("ledger: unknown payment stage %q", stage))
	}
}

// RecordStagePayment marks one payment stage as paid.
func RecordStagePayment(r entities.BookingRecord, stage entities.PaymentStage, actor string, now time.Time) (entities.BookingRecord, error) {
	switch stage {
	case entities.PaymentStageReservation:
		return RecordReservationPayment(r, actor, now)
	case entities.PaymentStageFiftyPercent:
		return RecordFiftyPercentPayment(r, actor, now)
	case entities.PaymentStageFull:
		return RecordFullPayment(r, actor, now)
	default:
		panic(fmt.Sprintf("ledger: unknown payment stage %q", stage))
	}
}

func RecordReservationPayment(r entities.BookingRecord, actor string, now time.Time) (entities.BookingRecord, error) {
	if err := ensureOpen(r); err != nil {
		return entities.BookingRecord{}, err
	}
	if r.Billing.ReservationStatus.IsPaid() {
		return entities.BookingRecord{}, preconditionFailed(GuardAlreadyPaid, "reservation fee already recorded as paid")
	}
	if r.Billing.ReservationFee > r.Billing.TotalCost {
		return entities.BookingRecord{}, preconditionFailed(GuardFeeExceedsTotal,
			"reservation fee %s exceeds total cost %s", r.Billing.ReservationFee, r.Billing.TotalCost)
	}
	out := r.Clone()
	out.Billing.ReservationStatus = entities.PaymentStatePaid
	return finishPayment(out, actor, now, fmt.Sprintf("Reservation fee of %s recorded as paid", r.Billing.ReservationFee))
}

func RecordFiftyPercentPayment(r entities.BookingRecord, actor string, now time.Time) (entities.BookingRecord, error) {
	if err := ensureOpen(r); err != nil {
		return entities.BookingRecord{}, err
	}
	if r.Billing.FiftyPercentStatus.IsPaid() {
		return entities.BookingRecord{}, preconditionFailed(GuardAlreadyPaid, "fifty percent payment already recorded")
	}
	if !r.Billing.ReservationStatus.IsPaid() {
		return entities.BookingRecord{}, preconditionFailed(GuardReservationUnpaid,
			"reservation fee must be paid before the fifty percent payment")
	}
	out := r.Clone()
	out.Billing.FiftyPercentStatus = entities.PaymentStatePaid
	return finishPayment(out, actor, now, fmt.Sprintf("50%% downpayment of %s recorded as paid", Downpayment(r)))
}

// RecordFullPayment settles the contract. An earlier stage must be marked
// paid; marking a booking fully paid straight from zero is refused. A zero
// reservation fee still counts once its flag is set.
func RecordFullPayment(r entities.BookingRecord, actor string, now time.Time) (entities.BookingRecord, error) {
	if err := ensureOpen(r); err != nil {
		return entities.BookingRecord{}, err
	}
	if r.Billing.FullPaymentStatus.IsPaid() {
		return entities.BookingRecord{}, preconditionFailed(GuardAlreadyPaid, "booking already fully paid")
	}
	if !r.Billing.ReservationStatus.IsPaid() && !r.Billing.FiftyPercentStatus.IsPaid() {
		return entities.BookingRecord{}, preconditionFailed(GuardNoPaymentRecorded,
			"no payment recorded yet; record the reservation fee first")
	}
	balance := BalanceDue(r)
	out := r.Clone()
	out.Billing.ReservationStatus = entities.PaymentStatePaid
	out.Billing.FiftyPercentStatus = entities.PaymentStatePaid
	out.Billing.FullPaymentStatus = entities.PaymentStatePaid
	return finishPayment(out, actor, now, fmt.Sprintf("Remaining balance of %s recorded as paid", balance))
}

// SetOperationalCost enters what the event cost to run. Zero clears it back
// to "not entered".
func SetOperationalCost(r entities.BookingRecord, cost entities.Money, actor string, now time.Time) (entities.BookingRecord, error) {
	if cost.IsNegative() {
		return entities.BookingRecord{}, preconditionFailed(GuardNegativeAmount, "operational cost must not be negative")
	}
	if r.Status == entities.BookingStatusRejected {
		return entities.BookingRecord{}, preconditionFailed(GuardBookingClosed, "booking %s is rejected", r.RefID)
	}
	out := r.Clone()
	out.Billing.OperationalCost = cost
	out = appendTimeline(out, actor, now, fmt.Sprintf("Operational cost set to %s", cost))
	if err := out.Validate(); err != nil {
		return entities.BookingRecord{}, preconditionFailed(GuardInvariantViolated, "%v", err)
	}
	return out, nil
}

func ensureOpen(r entities.BookingRecord) error {
	if r.Status == entities.BookingStatusRejected {
		return preconditionFailed(GuardBookingClosed, "booking %s is rejected", r.RefID)
	}
	return nil
}

func finishPayment(out entities.BookingRecord, actor string, now time.Time, action string) (entities.BookingRecord, error) {
	out.Billing.AmountPaid = AmountPaid(out)
	out = appendTimeline(out, actor, now, action)
	if err := out.Validate(); err != nil {
		return entities.BookingRecord{}, preconditionFailed(GuardInvariantViolated, "%v", err)
	}
	return out, nil
}

// appendTimeline adds an audit entry, never dated before the previous one.
func appendTimeline(r entities.BookingRecord, actor string, now time.Time, action string) entities.BookingRecord {
	at := now.UTC()
	if n := len(r.Timeline); n > 0 && at.Before(r.Timeline[n-1].Date) {
		at = r.Timeline[n-1].Date
	}
	if actor == "" {
		actor = "system"
	}
	r.Timeline = append(r.Timeline, entities.TimelineEntry{Date: at, Actor: actor, Action: action})
	r.UpdatedAt = at
	return r
}
