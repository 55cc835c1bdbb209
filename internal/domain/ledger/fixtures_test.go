package ledger

import (
	"time"

	"catering_ledger/internal/domain/entities"
)

var testNow = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func peso(v float64) entities.Money { return entities.MoneyFromFloat(v) }

// bookingIn builds a valid record in the given status with a 100,000 contract
// and a 5,000 reservation fee. Statuses that require it get the reservation
// fee marked as paid.
func bookingIn(status entities.BookingStatus) entities.BookingRecord {
	r := entities.BookingRecord{
		RefID:  "BK-" + string(status),
		Client: entities.Client{Name: "Ana Reyes", Email: "ana@example.com"},
		Event: entities.EventDetails{
			Date:   entities.NewCalendarDate(2026, time.December, 12),
			Type:   entities.EventTypeWedding,
			Venue:  "Casa Real",
			Guests: 120,
		},
		Billing: entities.Billing{
			TotalCost:          peso(100000),
			ReservationFee:     peso(5000),
			ReservationStatus:  entities.PaymentStateUnpaid,
			FiftyPercentStatus: entities.PaymentStateUnpaid,
			FullPaymentStatus:  entities.PaymentStateUnpaid,
		},
		Status: status,
	}
	if status.RequiresReservationPaid() {
		r.Billing.ReservationStatus = entities.PaymentStatePaid
		r.Billing.AmountPaid = r.Billing.ReservationFee
	}
	return r
}

func withFlags(r entities.BookingRecord, reservation, fifty, full bool) entities.BookingRecord {
	state := func(paid bool) entities.PaymentState {
		if paid {
			return entities.PaymentStatePaid
		}
		return entities.PaymentStateUnpaid
	}
	r.Billing.ReservationStatus = state(reservation)
	r.Billing.FiftyPercentStatus = state(fifty)
	r.Billing.FullPaymentStatus = state(full)
	r.Billing.AmountPaid = AmountPaid(r)
	return r
}
