package ledger

import (
	"sort"

	"catering_ledger/internal/domain/entities"
)

const DefaultUpcomingLimit = 5

type UpcomingEvent struct {
	RefID      string                 `json:"ref_id"`
	ClientName string                 `json:"client_name"`
	Date       entities.CalendarDate  `json:"date"`
	Type       entities.EventType     `json:"type"`
	Venue      string                 `json:"venue"`
	Guests     uint                   `json:"guests"`
	Status     entities.BookingStatus `json:"status"`
	BalanceDue entities.Money         `json:"balance_due"`
}

// DashboardSummary is what the admin landing page shows.
type DashboardSummary struct {
	TotalBookings    int                            `json:"total_bookings"`
	StatusCounts     map[entities.BookingStatus]int `json:"status_counts"`
	ActiveBookings   int                            `json:"active_bookings"`
	PendingInquiries int                            `json:"pending_inquiries"`
	UpcomingEvents   []UpcomingEvent                `json:"upcoming_events"`
	Receivables      entities.Money                 `json:"receivables"`
}

// Dashboard counts bookings by status and lists the next active events on
// or after today, soonest first (ties broken by ref id). Receivables is the
// portfolio figure from Aggregate.
func Dashboard(records []entities.BookingRecord, today entities.CalendarDate, upcomingLimit int) DashboardSummary {
	if upcomingLimit <= 0 {
		upcomingLimit = DefaultUpcomingLimit
	}
	s := DashboardSummary{
		TotalBookings:  len(records),
		StatusCounts:   map[entities.BookingStatus]int{},
		UpcomingEvents: []UpcomingEvent{},
		Receivables:    Aggregate(records).TotalReceivables,
	}
	var upcoming []UpcomingEvent
	for _, r := range records {
		s.StatusCounts[r.Status]++
		if r.Status == entities.BookingStatusPending {
			s.PendingInquiries++
		}
		if r.Status.Terminal() {
			continue
		}
		s.ActiveBookings++
		if r.Event.Date.IsZero() || r.Event.Date.Before(today) {
			continue
		}
		upcoming = append(upcoming, UpcomingEvent{
			RefID:      r.RefID,
			ClientName: r.Client.Name,
			Date:       r.Event.Date,
			Type:       r.Event.Type,
			Venue:      r.Event.Venue,
			Guests:     r.Event.Guests,
			Status:     r.Status,
			BalanceDue: BalanceDue(r),
		})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if c := upcoming[i].Date.Compare(upcoming[j].Date); c != 0 {
			return c < 0
		}
		return upcoming[i].RefID < upcoming[j].RefID
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	s.UpcomingEvents = append(s.UpcomingEvents, upcoming...)
	return s
}
