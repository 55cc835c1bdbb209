package entities

import (
	"errors"
	"testing"
	"time"
)

func validRecord() BookingRecord {
	return BookingRecord{
		RefID:  "BK-1A2B3C4D",
		Client: Client{Name: "Maria Santos", Email: "maria@example.com", Phone: "0917"},
		Event: EventDetails{
			Date:   NewCalendarDate(2026, time.June, 20),
			Type:   EventTypeWedding,
			Venue:  "Garden Hall",
			Guests: 150,
		},
		Billing: Billing{
			TotalCost:          MoneyFromFloat(100000),
			ReservationFee:     MoneyFromFloat(5000),
			ReservationStatus:  PaymentStateUnpaid,
			FiftyPercentStatus: PaymentStateUnpaid,
			FullPaymentStatus:  PaymentStateUnpaid,
		},
		Status: BookingStatusPending,
	}
}

func TestBookingRecord_Validate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	cases := []struct {
		name  string
		edit  func(r *BookingRecord)
		field string
	}{
		{name: "missing ref id", edit: func(r *BookingRecord) { r.RefID = " " }, field: "ref_id"},
		{name: "missing client name", edit: func(r *BookingRecord) { r.Client.Name = "" }, field: "client.name"},
		{name: "bad email", edit: func(r *BookingRecord) { r.Client.Email = "not-an-email" }, field: "client.email"},
		{name: "unknown status", edit: func(r *BookingRecord) { r.Status = "Archived" }, field: "status"},
		{name: "unknown event type", edit: func(r *BookingRecord) { r.Event.Type = "Rave" }, field: "event.type"},
		{name: "negative total", edit: func(r *BookingRecord) { r.Billing.TotalCost = -1 }, field: "billing.total_cost"},
		{name: "negative add-on", edit: func(r *BookingRecord) { r.AddOns = []AddOn{{Name: "Lechon", Price: -1}} }, field: "add_ons[0].price"},
		{name: "unknown payment state", edit: func(r *BookingRecord) { r.Billing.FiftyPercentStatus = "Half" }, field: "billing.fifty_percent_status"},
		{name: "amount paid exceeds total", edit: func(r *BookingRecord) { r.Billing.AmountPaid = r.Billing.TotalCost + 1 }, field: "billing.amount_paid"},
		{name: "full without fifty", edit: func(r *BookingRecord) { r.Billing.FullPaymentStatus = PaymentStatePaid }, field: "billing.fifty_percent_status"},
		{name: "reserved without reservation fee", edit: func(r *BookingRecord) { r.Status = BookingStatusReserved }, field: "billing.reservation_status"},
		{name: "timeline out of order", edit: func(r *BookingRecord) {
			now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
			r.Timeline = []TimelineEntry{{Date: now}, {Date: now.Add(-time.Hour)}}
		}, field: "timeline[1].date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.edit(&r)
			err := r.Validate()
			var iv *InvariantViolation
			if !errors.As(err, &iv) {
				t.Fatalf("expected InvariantViolation, got %v", err)
			}
			if iv.Field != tc.field {
				t.Fatalf("expected field %s, got %s (%v)", tc.field, iv.Field, err)
			}
		})
	}
}

func TestBookingRecord_CloneDoesNotShareSlices(t *testing.T) {
	r := validRecord()
	r.AddOns = []AddOn{{Name: "Chocolate fountain", Price: 350000}}
	r.Packages = []string{"Package A"}
	r.Timeline = []TimelineEntry{{Action: "created"}}

	c := r.Clone()
	c.AddOns[0].Name = "changed"
	c.Packages[0] = "changed"
	c.Timeline[0].Action = "changed"

	if r.AddOns[0].Name != "Chocolate fountain" || r.Packages[0] != "Package A" || r.Timeline[0].Action != "created" {
		t.Fatalf("clone mutated the original: %+v", r)
	}
	if got := r.AddOnsTotal(); got != 350000 {
		t.Fatalf("expected add-ons total 3500.00, got %s", got)
	}
}

func TestBookingStatus_Helpers(t *testing.T) {
	if !BookingStatusRejected.Terminal() || !BookingStatusCompleted.Terminal() || BookingStatusPaid.Terminal() {
		t.Fatalf("unexpected terminal classification")
	}
	if !BookingStatusConfirmed.RequiresReservationPaid() || BookingStatusProposalSent.RequiresReservationPaid() {
		t.Fatalf("unexpected reservation requirement")
	}
	if BookingStatus("Cancelled").Valid() {
		t.Fatalf("Cancelled is folded into Rejected and must not be a stored status")
	}
}
