package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"catering_ledger/internal/domain/entities"
)

// Normalize turns a raw store document into a validated BookingRecord.
//
// Documents come in two shapes: the nested one this service writes
// (client/event/billing maps) and the flat one older intake forms produced
// (fullName, eventDate, totalCost at top level). Both are accepted.
//
// Defaults for absent fields: guests 0, status Pending, payment flags Unpaid,
// amounts 0, event type Other. Present-but-malformed values are errors.
func Normalize(doc entities.RawBookingDocument) (entities.BookingRecord, error) {
	n := normalizer{doc: doc}
	n.refID = strings.TrimSpace(stringOf(pick(doc, "refId", "ref_id", "id")))
	if n.refID == "" {
		return entities.BookingRecord{}, &ValidationError{Field: "ref_id", Reason: "is required"}
	}

	r := entities.BookingRecord{RefID: n.refID}
	client := n.section("client")
	r.Client = entities.Client{
		Name:  strings.TrimSpace(stringOf(pick(client, "name", "fullName", "full_name"))),
		Email: strings.TrimSpace(stringOf(pick(client, "email"))),
		Phone: strings.TrimSpace(stringOf(pick(client, "phone", "contactNumber", "contact_number"))),
	}

	event := n.section("event")
	r.Event = entities.EventDetails{
		StartTime:    strings.TrimSpace(stringOf(pick(event, "startTime", "start_time"))),
		EndTime:      strings.TrimSpace(stringOf(pick(event, "endTime", "end_time"))),
		Type:         ParseEventType(stringOf(pick(event, "type", "eventType", "event_type"))),
		Venue:        strings.TrimSpace(stringOf(pick(event, "venue"))),
		ServiceStyle: strings.TrimSpace(stringOf(pick(event, "serviceStyle", "service_style"))),
	}
	r.Event.Date = n.date("event.date", pick(event, "date", "eventDate", "event_date"))
	r.Event.Guests = n.guests(pick(event, "guests", "guestCount", "guest_count", "pax"))

	billing := n.section("billing")
	r.Billing = entities.Billing{
		TotalCost:          n.money("billing.total_cost", pick(billing, "totalCost", "total_cost")),
		ReservationFee:     n.money("billing.reservation_fee", pick(billing, "reservationFee", "reservation_fee")),
		AmountPaid:         n.money("billing.amount_paid", pick(billing, "amountPaid", "amount_paid")),
		OperationalCost:    n.money("billing.operational_cost", pick(billing, "operationalCost", "operational_cost")),
		ReservationStatus:  n.paymentState("billing.reservation_status", pick(billing, "reservationStatus", "reservation_status", "reservationPaid")),
		FiftyPercentStatus: n.paymentState("billing.fifty_percent_status", pick(billing, "fiftyPercentStatus", "fifty_percent_status")),
		FullPaymentStatus:  n.paymentState("billing.full_payment_status", pick(billing, "fullPaymentStatus", "full_payment_status")),
	}

	r.Status = n.status(pick(doc, "status"))
	r.AddOns = n.addOns(pick(doc, "addOns", "add_ons"))
	r.Packages = n.packages(pick(doc, "packages", "package", "selectedPackage"))
	r.Notes = strings.TrimSpace(stringOf(pick(doc, "notes")))
	r.RejectionReason = strings.TrimSpace(stringOf(pick(doc, "rejectionReason", "rejection_reason")))
	r.Timeline = n.timeline(pick(doc, "timeline"))
	r.CreatedAt = n.timestamp("created_at", pick(doc, "createdAt", "created_at"))
	r.UpdatedAt = n.timestamp("updated_at", pick(doc, "updatedAt", "updated_at"))

	if n.err != nil {
		return entities.BookingRecord{}, n.err
	}
	if err := r.Validate(); err != nil {
		var iv *entities.InvariantViolation
		if errors.As(err, &iv) {
			return entities.BookingRecord{}, &ValidationError{RefID: n.refID, Field: iv.Field, Reason: iv.Reason}
		}
		return entities.BookingRecord{}, &ValidationError{RefID: n.refID, Field: "record", Reason: err.Error()}
	}
	return r, nil
}

// NormalizeAll normalizes a whole snapshot, keeping the documents that pass
// and collecting the failures.
func NormalizeAll(docs []entities.RawBookingDocument) ([]entities.BookingRecord, []*ValidationError) {
	records := make([]entities.BookingRecord, 0, len(docs))
	var failures []*ValidationError
	for _, doc := range docs {
		r, err := Normalize(doc)
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				ve = &ValidationError{Field: "record", Reason: err.Error()}
			}
			failures = append(failures, ve)
			continue
		}
		records = append(records, r)
	}
	return records, failures
}

type normalizer struct {
	doc   entities.RawBookingDocument
	refID string
	err   error
}

func (n *normalizer) fail(field, format string, args ...any) {
	if n.err == nil {
		n.err = &ValidationError{RefID: n.refID, Field: field, Reason: fmt.Sprintf(format, args...)}
	}
}

// section returns the nested map under key, or the document itself for the
// flat layout.
func (n *normalizer) section(key string) map[string]any {
	if m, ok := n.doc[key].(map[string]any); ok {
		return m
	}
	return n.doc
}

func (n *normalizer) money(field string, v any) entities.Money {
	m, err := moneyOf(v)
	if err != nil {
		n.fail(field, "is not a valid amount: %v", err)
		return 0
	}
	return m
}

func (n *normalizer) guests(v any) uint {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			n.fail("event.guests", "is not a whole number: %q", x)
			return 0
		}
		return n.guests(i)
	case int:
		if x < 0 {
			n.fail("event.guests", "must not be negative")
			return 0
		}
		return uint(x)
	case int64:
		return n.guests(int(x))
	case float64:
		if x != math.Trunc(x) {
			n.fail("event.guests", "is not a whole number: %v", x)
			return 0
		}
		return n.guests(int(x))
	case json.Number:
		return n.guests(x.String())
	default:
		n.fail("event.guests", "has unsupported type %T", v)
		return 0
	}
}

func (n *normalizer) date(field string, v any) entities.CalendarDate {
	switch x := v.(type) {
	case nil:
		return entities.CalendarDate{}
	case time.Time:
		return entities.CalendarDateOf(x)
	case string:
		if strings.TrimSpace(x) == "" {
			return entities.CalendarDate{}
		}
		d, err := entities.ParseCalendarDate(x)
		if err != nil {
			n.fail(field, "is not a valid date: %q", x)
		}
		return d
	default:
		n.fail(field, "has unsupported type %T", v)
		return entities.CalendarDate{}
	}
}

func (n *normalizer) timestamp(field string, v any) time.Time {
	switch x := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return x.UTC()
	case string:
		if strings.TrimSpace(x) == "" {
			return time.Time{}
		}
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(x))
		if err != nil {
			n.fail(field, "is not an RFC3339 timestamp: %q", x)
		}
		return t.UTC()
	default:
		n.fail(field, "has unsupported type %T", v)
		return time.Time{}
	}
}

func (n *normalizer) paymentState(field string, v any) entities.PaymentState {
	switch x := v.(type) {
	case nil:
		return entities.PaymentStateUnpaid
	case bool:
		if x {
			return entities.PaymentStatePaid
		}
		return entities.PaymentStateUnpaid
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "paid", "true", "yes", "done", "settled":
			return entities.PaymentStatePaid
		case "", "unpaid", "false", "no", "pending", "not paid":
			return entities.PaymentStateUnpaid
		}
	}
	n.fail(field, "is not a payment state: %v", v)
	return entities.PaymentStateUnpaid
}

var statusAliases = map[string]entities.BookingStatus{
	"pending":      entities.BookingStatusPending,
	"confirmed":    entities.BookingStatusConfirmed,
	"rejected":     entities.BookingStatusRejected,
	"cancelled":    entities.BookingStatusRejected,
	"canceled":     entities.BookingStatusRejected,
	"proposalsent": entities.BookingStatusProposalSent,
	"verifying":    entities.BookingStatusVerifying,
	"reserved":     entities.BookingStatusReserved,
	"accepted":     entities.BookingStatusAccepted,
	"noresponse":   entities.BookingStatusNoResponse,
	"paid":         entities.BookingStatusPaid,
	"completed":    entities.BookingStatusCompleted,
}

// ParseStatus maps any of the spellings seen in stored documents to a
// canonical status.
func ParseStatus(s string) (entities.BookingStatus, bool) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	st, ok := statusAliases[key]
	return st, ok
}

func (n *normalizer) status(v any) entities.BookingStatus {
	s := strings.TrimSpace(stringOf(v))
	if s == "" {
		return entities.BookingStatusPending
	}
	st, ok := ParseStatus(s)
	if !ok {
		n.fail("status", "unknown status %q", s)
		return entities.BookingStatusPending
	}
	return st
}

// ParseEventType files free-text event descriptions ("Wedding Reception",
// "18th Debut") under a known type, falling back to Other.
func ParseEventType(s string) entities.EventType {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return entities.EventTypeOther
	}
	for _, t := range entities.AllEventTypes {
		if strings.Contains(key, strings.ToLower(string(t))) {
			return t
		}
	}
	return entities.EventTypeOther
}

func (n *normalizer) addOns(v any) []entities.AddOn {
	items, ok := v.([]any)
	if !ok {
		if v != nil {
			n.fail("add_ons", "must be a list")
		}
		return nil
	}
	out := make([]entities.AddOn, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			n.fail(fmt.Sprintf("add_ons[%d]", i), "must be an object")
			return nil
		}
		out = append(out, entities.AddOn{
			Name:  strings.TrimSpace(stringOf(m["name"])),
			Price: n.money(fmt.Sprintf("add_ons[%d].price", i), m["price"]),
		})
	}
	return out
}

func (n *normalizer) packages(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return cleanPackages([]string{x})
	case []any:
		out := make([]string, 0, len(x))
		for _, p := range x {
			out = append(out, stringOf(p))
		}
		return cleanPackages(out)
	case []string:
		return cleanPackages(x)
	default:
		n.fail("packages", "has unsupported type %T", v)
		return nil
	}
}

func (n *normalizer) timeline(v any) []entities.TimelineEntry {
	items, ok := v.([]any)
	if !ok {
		if v != nil {
			n.fail("timeline", "must be a list")
		}
		return nil
	}
	out := make([]entities.TimelineEntry, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			n.fail(fmt.Sprintf("timeline[%d]", i), "must be an object")
			return nil
		}
		out = append(out, entities.TimelineEntry{
			Date:   n.timestamp(fmt.Sprintf("timeline[%d].date", i), m["date"]),
			Actor:  strings.TrimSpace(stringOf(m["actor"])),
			Action: strings.TrimSpace(stringOf(m["action"])),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func wholePesos(n int64) (entities.Money, error) {
	if n > math.MaxInt64/100 || n < math.MinInt64/100 {
		return 0, fmt.Errorf("%w: %d out of range", entities.ErrInvalidMoney, n)
	}
	return entities.NewMoneyFromCents(n * 100), nil
}

func moneyOf(v any) (entities.Money, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, nil
		}
		return entities.ParseMoney(x)
	case float64:
		return entities.NewMoneyFromFloat(x)
	case int:
		return wholePesos(int64(x))
	case int64:
		return wholePesos(x)
	case json.Number:
		return entities.ParseMoney(x.String())
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
