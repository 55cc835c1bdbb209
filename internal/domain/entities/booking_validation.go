package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// InvariantViolation names the first booking field that breaks a rule.
type InvariantViolation struct {
	Field  string
	Reason string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

func violation(field, reason string) *InvariantViolation {
	return &InvariantViolation{Field: field, Reason: reason}
}

// Validate checks the record-level invariants. It returns nil or an
// *InvariantViolation.
func (r BookingRecord) Validate() error {
	if strings.TrimSpace(r.RefID) == "" {
		return violation("ref_id", "is required")
	}
	if err := validate.Struct(r.Client); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return violation("client."+ve[0].Field(), describeTag(ve[0].Tag()))
		}
		return violation("client", err.Error())
	}
	if !r.Status.Valid() {
		return violation("status", fmt.Sprintf("unknown status %q", r.Status))
	}
	if !r.Event.Type.Valid() {
		return violation("event.type", fmt.Sprintf("unknown event type %q", r.Event.Type))
	}

	b := r.Billing
	for _, f := range []struct {
		name  string
		value Money
	}{
		{"billing.total_cost", b.TotalCost},
		{"billing.reservation_fee", b.ReservationFee},
		{"billing.amount_paid", b.AmountPaid},
		{"billing.operational_cost", b.OperationalCost},
	} {
		if f.value.IsNegative() {
			return violation(f.name, "must not be negative")
		}
	}
	for i, a := range r.AddOns {
		if a.Price.IsNegative() {
			return violation(fmt.Sprintf("add_ons[%d].price", i), "must not be negative")
		}
	}
	for _, f := range []struct {
		name  string
		value PaymentState
	}{
		{"billing.reservation_status", b.ReservationStatus},
		{"billing.fifty_percent_status", b.FiftyPercentStatus},
		{"billing.full_payment_status", b.FullPaymentStatus},
	} {
		if f.value != PaymentStatePaid && f.value != PaymentStateUnpaid {
			return violation(f.name, fmt.Sprintf("unknown payment state %q", f.value))
		}
	}

	if b.AmountPaid > b.TotalCost {
		return violation("billing.amount_paid", "exceeds total cost")
	}
	if b.FullPaymentStatus.IsPaid() && !b.FiftyPercentStatus.IsPaid() {
		return violation("billing.fifty_percent_status", "must be paid when full payment is paid")
	}
	if r.Status.RequiresReservationPaid() && !b.ReservationStatus.IsPaid() {
		return violation("billing.reservation_status", fmt.Sprintf("must be paid for status %q", r.Status))
	}

	for i := 1; i < len(r.Timeline); i++ {
		if r.Timeline[i].Date.Before(r.Timeline[i-1].Date) {
			return violation(fmt.Sprintf("timeline[%d].date", i), "is earlier than the previous entry")
		}
	}
	return nil
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + tag + " rule"
	}
}
