package entities

import "time"

// BookingStatus is the lifecycle stage of a catering booking.
//
// Domain notes:
//   - Values are stored verbatim in the document store ("Proposal Sent", not "proposal_sent").
//   - "Cancelled" from older documents is folded into Rejected at normalization time.
//   - Changes go through the ledger transition engine only.

type BookingStatus string

const (
	BookingStatusPending      BookingStatus = "Pending"
	BookingStatusConfirmed    BookingStatus = "Confirmed"
	BookingStatusRejected     BookingStatus = "Rejected"
	BookingStatusProposalSent BookingStatus = "Proposal Sent"
	BookingStatusVerifying    BookingStatus = "Verifying"
	BookingStatusReserved     BookingStatus = "Reserved"
	BookingStatusAccepted     BookingStatus = "Accepted"
	BookingStatusNoResponse   BookingStatus = "No Response"
	BookingStatusPaid         BookingStatus = "Paid"
	BookingStatusCompleted    BookingStatus = "Completed"
)

// AllBookingStatuses lists every status in lifecycle order.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusProposalSent,
	BookingStatusVerifying,
	BookingStatusReserved,
	BookingStatusAccepted,
	BookingStatusNoResponse,
	BookingStatusPaid,
	BookingStatusCompleted,
	BookingStatusRejected,
}

func (s BookingStatus) Valid() bool {
	for _, v := range AllBookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no forward edge leaves s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCompleted
}

// RequiresReservationPaid reports whether a booking in s must have its
// reservation fee recorded as paid.
func (s BookingStatus) RequiresReservationPaid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusReserved, BookingStatusPaid, BookingStatusCompleted:
		return true
	}
	return false
}

type EventType string

const (
	EventTypeWedding     EventType = "Wedding"
	EventTypeBirthday    EventType = "Birthday"
	EventTypeDebut       EventType = "Debut"
	EventTypeCorporate   EventType = "Corporate"
	EventTypeChristening EventType = "Christening"
	EventTypeAnniversary EventType = "Anniversary"
	EventTypeOther       EventType = "Other"
)

var AllEventTypes = []EventType{
	EventTypeWedding,
	EventTypeBirthday,
	EventTypeDebut,
	EventTypeCorporate,
	EventTypeChristening,
	EventTypeAnniversary,
	EventTypeOther,
}

func (t EventType) Valid() bool {
	for _, v := range AllEventTypes {
		if t == v {
			return true
		}
	}
	return false
}

type PaymentState string

const (
	PaymentStateUnpaid PaymentState = "Unpaid"
	PaymentStatePaid   PaymentState = "Paid"
)

func (p PaymentState) IsPaid() bool { return p == PaymentStatePaid }

type Client struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type EventDetails struct {
	Date         CalendarDate `json:"date"`
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	Type         EventType    `json:"type"`
	Venue        string       `json:"venue"`
	Guests       uint         `json:"guests"`
	ServiceStyle string       `json:"service_style"`
}

// Billing carries the contract amount and the three payment-stage flags.
//
// The flags are authoritative: AmountPaid is kept in sync with them by the
// ledger write paths but is never used to infer a stage.

type Billing struct {
	TotalCost          Money        `json:"total_cost"`
	ReservationFee     Money        `json:"reservation_fee"`
	AmountPaid         Money        `json:"amount_paid"`
	OperationalCost    Money        `json:"operational_cost"`
	ReservationStatus  PaymentState `json:"reservation_status"`
	FiftyPercentStatus PaymentState `json:"fifty_percent_status"`
	FullPaymentStatus  PaymentState `json:"full_payment_status"`
}

type AddOn struct {
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// TimelineEntry is one line of the append-only audit log on a booking.
type TimelineEntry struct {
	Date   time.Time `json:"date"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
}

// BookingRecord is the canonical booking shape every ledger operation consumes.
//
// Storage model (DynamoDB):
//   - PK: ref_id
//   - nested maps: client, event, billing; lists: add_ons, packages, timeline
//
// RefID is assigned once at intake and never rewritten.
type BookingRecord struct {
	RefID           string          `json:"ref_id"`
	Client          Client          `json:"client"`
	Event           EventDetails    `json:"event"`
	Billing         Billing         `json:"billing"`
	Status          BookingStatus   `json:"status"`
	AddOns          []AddOn         `json:"add_ons"`
	Packages        []string        `json:"packages"`
	Notes           string          `json:"notes"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Timeline        []TimelineEntry `json:"timeline"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Clone returns a copy that shares no slices with r.
func (r BookingRecord) Clone() BookingRecord {
	out := r
	if r.AddOns != nil {
		out.AddOns = append([]AddOn(nil), r.AddOns...)
	}
	if r.Packages != nil {
		out.Packages = append([]string(nil), r.Packages...)
	}
	if r.Timeline != nil {
		out.Timeline = append([]TimelineEntry(nil), r.Timeline...)
	}
	return out
}

// AddOnsTotal sums the add-on prices.
func (r BookingRecord) AddOnsTotal() Money {
	var total Money
	for _, a := range r.AddOns {
		total = total.Add(a.Price)
	}
	return total
}

// RawBookingDocument is a booking as delivered by the document store, before
// normalization. Values keep whatever dynamic type the store produced.
type RawBookingDocument map[string]any
