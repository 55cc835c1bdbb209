package response

import (
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
)

// BookingResponse is a booking as the admin screens need it: the stored
// record, its derived billing figures and the statuses it may move to.
type BookingResponse struct {
	entities.BookingRecord
	Summary        ledger.BillingSummary    `json:"summary"`
	AllowedTargets []entities.BookingStatus `json:"allowed_targets"`
}

func FromBooking(r entities.BookingRecord) BookingResponse {
	if r.AddOns == nil {
		r.AddOns = []entities.AddOn{}
	}
	if r.Packages == nil {
		r.Packages = []string{}
	}
	if r.Timeline == nil {
		r.Timeline = []entities.TimelineEntry{}
	}
	return BookingResponse{
		BookingRecord:  r,
		Summary:        ledger.Summarize(r),
		AllowedTargets: ledger.AllowedTargets(r.Status),
	}
}

type SkippedDocumentResponse struct {
	RefID  string `json:"ref_id,omitempty"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type BookingListResponse struct {
	Bookings []BookingResponse         `json:"bookings"`
	Skipped  []SkippedDocumentResponse `json:"skipped"`
}

func FromBookingSnapshot(records []entities.BookingRecord, skipped []*ledger.ValidationError) BookingListResponse {
	out := BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(records)),
		Skipped:  make([]SkippedDocumentResponse, 0, len(skipped)),
	}
	for _, r := range records {
		out.Bookings = append(out.Bookings, FromBooking(r))
	}
	for _, s := range skipped {
		out.Skipped = append(out.Skipped, SkippedDocumentResponse{RefID: s.RefID, Field: s.Field, Reason: s.Reason})
	}
	return out
}

// TransitionResponse carries the updated booking and the side effects the
// service carried out (or queued) for it.
type TransitionResponse struct {
	Booking BookingResponse `json:"booking"`
	Effects []ledger.Intent `json:"effects"`
}

func FromTransition(res ledger.TransitionResult) TransitionResponse {
	effects := res.Effects
	if effects == nil {
		effects = []ledger.Intent{}
	}
	return TransitionResponse{Booking: FromBooking(res.Record), Effects: effects}
}
