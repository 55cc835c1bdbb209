package request

import (
	"errors"
	"strings"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase"
)

var (
	ErrInvalidEventDate = errors.New("invalid event date")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type AddOnRequest struct {
	Name  string         `json:"name" binding:"required"`
	Price entities.Money `json:"price" binding:"gte=0"`
}

// BookingCreateRequest is the customer inquiry form. Amounts accept either
// JSON numbers or decimal strings ("1,500.00").
type BookingCreateRequest struct {
	Client         ClientRequest  `json:"client" binding:"required"`
	EventDate      string         `json:"event_date" binding:"required"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	EventType      string         `json:"event_type"`
	Venue          string         `json:"venue"`
	Guests         uint           `json:"guests"`
	ServiceStyle   string         `json:"service_style"`
	TotalCost      entities.Money `json:"total_cost" binding:"gte=0"`
	ReservationFee entities.Money `json:"reservation_fee" binding:"gte=0"`
	AddOns         []AddOnRequest `json:"add_ons" binding:"omitempty,dive"`
	Packages       []string       `json:"packages"`
	Notes          string         `json:"notes"`
}

func (r BookingCreateRequest) ToInput() (usecase.InquiryInput, error) {
	date, err := entities.ParseCalendarDate(strings.TrimSpace(r.EventDate))
	if err != nil {
		return usecase.InquiryInput{}, ErrInvalidEventDate
	}
	in := usecase.InquiryInput{
		Client: entities.Client{
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		},
		EventDate:      date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		EventType:      ledger.ParseEventType(r.EventType),
		Venue:          r.Venue,
		Guests:         r.Guests,
		ServiceStyle:   r.ServiceStyle,
		TotalCost:      r.TotalCost,
		ReservationFee: r.ReservationFee,
		Packages:       r.Packages,
		Notes:          r.Notes,
	}
	for _, a := range r.AddOns {
		in.AddOns = append(in.AddOns, entities.AddOn{Name: strings.TrimSpace(a.Name), Price: a.Price})
	}
	return in, nil
}

// BookingStatusRequest moves a booking along its lifecycle. Reason is
// required when rejecting; Restore must be set to reopen a rejected booking.
type BookingStatusRequest struct {
	Status   string   `json:"status" binding:"required"`
	Reason   string   `json:"reason"`
	Packages []string `json:"packages"`
	Restore  bool     `json:"restore"`
	Actor    string   `json:"actor"`
}

func (r BookingStatusRequest) ToCommand() (usecase.TransitionCommand, error) {
	status, ok := ledger.ParseStatus(r.Status)
	if !ok {
		return usecase.TransitionCommand{}, ErrInvalidStatus
	}
	return usecase.TransitionCommand{
		Target:   status,
		Actor:    strings.TrimSpace(r.Actor),
		Reason:   r.Reason,
		Packages: r.Packages,
		Restore:  r.Restore,
	}, nil
}

type OperationalCostRequest struct {
	Amount *entities.Money `json:"amount" binding:"required"`
	Actor  string          `json:"actor"`
}

// PaymentStageRequest is the optional body of a manual stage marking.
type PaymentStageRequest struct {
	Actor string `json:"actor"`
}
