package interfaces

import (
	"context"
	"errors"
	"time"

	"catering_ledger/internal/domain/entities"
)

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/mock_booking_repository_interface.go -package=mock_interfaces

var (
	// ErrBookingAlreadyExists is returned by Create when the ref id is taken.
	ErrBookingAlreadyExists = errors.New("booking already exists")
	// ErrBookingVersionConflict is returned by Update when the stored
	// document changed since it was read.
	ErrBookingVersionConflict = errors.New("booking was modified concurrently")
)

// IBookingRepository abstracts the booking document store.
//
// Reads hand back raw documents: the store holds bookings written by older
// intake forms too, so callers normalize before use. Writes take canonical
// records and always store the nested layout.
type IBookingRepository interface {
	Create(ctx context.Context, r entities.BookingRecord) (entities.BookingRecord, error)
	// GetByRefID returns a nil document when the booking does not exist.
	GetByRefID(ctx context.Context, refID string) (entities.RawBookingDocument, error)
	List(ctx context.Context) ([]entities.RawBookingDocument, error)
	// Update replaces the stored document when it still carries
	// prevUpdatedAt (zero means the document had no updated_at).
	Update(ctx context.Context, r entities.BookingRecord, prevUpdatedAt time.Time) (entities.BookingRecord, error)
}
