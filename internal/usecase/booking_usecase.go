package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking_usecase.go -destination=../adapter/http/handlers/mocks/mock_booking_usecase.go -package=mocks

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidRefID        = errors.New("invalid ref_id")
	ErrInvalidBooking      = errors.New("invalid booking")
	ErrInvalidPaymentStage = errors.New("invalid payment stage")
	ErrBookingConflict     = errors.New("booking was modified by another request")
)

// InquiryInput is what a customer submits through the booking form.
type InquiryInput struct {
	Client         entities.Client
	EventDate      entities.CalendarDate
	StartTime      string
	EndTime        string
	EventType      entities.EventType
	Venue          string
	Guests         uint
	ServiceStyle   string
	TotalCost      entities.Money
	ReservationFee entities.Money
	AddOns         []entities.AddOn
	Packages       []string
	Notes          string
}

// TransitionCommand is an admin request to move a booking to a new status.
type TransitionCommand struct {
	Target   entities.BookingStatus
	Actor    string
	Reason   string
	Packages []string
	Restore  bool
}

// BookingSnapshot is the normalized view of every stored booking. Documents
// that could not be normalized are reported in Skipped.
type BookingSnapshot struct {
	Records []entities.BookingRecord
	Skipped []*ledger.ValidationError
}

// IBookingUseCase exposes booking intake, lookup and the admin write-back
// operations. Every write goes through the ledger engine; this layer only
// loads, persists and dispatches the resulting intents.
type IBookingUseCase interface {
	CreateInquiry(ctx context.Context, in InquiryInput) (entities.BookingRecord, error)
	GetByRefID(ctx context.Context, refID string) (entities.BookingRecord, error)
	List(ctx context.Context) (BookingSnapshot, error)
	Transition(ctx context.Context, refID string, cmd TransitionCommand) (ledger.TransitionResult, error)
	RecordPayment(ctx context.Context, refID string, stage entities.PaymentStage, actor string) (entities.BookingRecord, error)
	SetOperationalCost(ctx context.Context, refID string, amount entities.Money, actor string) (entities.BookingRecord, error)
}

const maxRefIDAttempts = 3

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	publisher interfaces.INotificationPublisher
	cache     interfaces.IPortfolioCache
	loc       *time.Location
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase wires the use case. publisher and cache are optional.
func NewBookingUseCase(repo interfaces.IBookingRepository, publisher interfaces.INotificationPublisher, cache interfaces.IPortfolioCache) *BookingUseCase {
	return &BookingUseCase{repo: repo, publisher: publisher, cache: cache, loc: time.UTC, now: time.Now}
}

// WithLocation sets the business timezone that decides which calendar day
// counts as today for date guards.
func (u *BookingUseCase) WithLocation(loc *time.Location) *BookingUseCase {
	if loc != nil {
		u.loc = loc
	}
	return u
}

func (u *BookingUseCase) localNow() time.Time {
	return u.now().In(u.loc)
}

func (u *BookingUseCase) CreateInquiry(ctx context.Context, in InquiryInput) (entities.BookingRecord, error) {
	now := u.now().UTC()
	r := entities.BookingRecord{
		RefID: NewRefID(),
		Client: entities.Client{
			Name:  strings.TrimSpace(in.Client.Name),
			Email: strings.TrimSpace(in.Client.Email),
			Phone: strings.TrimSpace(in.Client.Phone),
		},
		Event: entities.EventDetails{
			Date:         in.EventDate,
			StartTime:    strings.TrimSpace(in.StartTime),
			EndTime:      strings.TrimSpace(in.EndTime),
			Type:         in.EventType,
			Venue:        strings.TrimSpace(in.Venue),
			Guests:       in.Guests,
			ServiceStyle: strings.TrimSpace(in.ServiceStyle),
		},
		Billing: entities.Billing{
			TotalCost:          in.TotalCost,
			ReservationFee:     in.ReservationFee,
			ReservationStatus:  entities.PaymentStateUnpaid,
			FiftyPercentStatus: entities.PaymentStateUnpaid,
			FullPaymentStatus:  entities.PaymentStateUnpaid,
		},
		Status:    entities.BookingStatusPending,
		AddOns:    in.AddOns,
		Packages:  in.Packages,
		Notes:     strings.TrimSpace(in.Notes),
		Timeline:  []entities.TimelineEntry{{Date: now, Actor: "client", Action: "Inquiry received"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if r.Event.Type == "" {
		r.Event.Type = entities.EventTypeOther
	}
	if r.Billing.ReservationFee > r.Billing.TotalCost {
		return entities.BookingRecord{}, fmt.Errorf("%w: reservation fee exceeds total cost", ErrInvalidBooking)
	}
	if err := r.Validate(); err != nil {
		log.Printf("[booking][usecase] inquiry rejected err=%v", err)
		return entities.BookingRecord{}, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	var created entities.BookingRecord
	var err error
	for attempt := 0; attempt < maxRefIDAttempts; attempt++ {
		created, err = u.repo.Create(ctx, r)
		if !errors.Is(err, interfaces.ErrBookingAlreadyExists) {
			break
		}
		log.Printf("[booking][usecase] ref_id collision ref_id=%s attempt=%d", r.RefID, attempt+1)
		r.RefID = NewRefID()
	}
	if err != nil {
		log.Printf("[booking][usecase] create failed ref_id=%s err=%v", r.RefID, err)
		return entities.BookingRecord{}, err
	}
	log.Printf("[booking][usecase] inquiry created ref_id=%s event_date=%s", created.RefID, created.Event.Date)
	u.invalidatePortfolio(ctx)
	return created, nil
}

func (u *BookingUseCase) GetByRefID(ctx context.Context, refID string) (entities.BookingRecord, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.BookingRecord{}, ErrInvalidRefID
	}
	return u.load(ctx, refID)
}

func (u *BookingUseCase) List(ctx context.Context) (BookingSnapshot, error) {
	docs, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[booking][usecase] list failed err=%v", err)
		return BookingSnapshot{}, err
	}
	records, skipped := ledger.NormalizeAll(docs)
	for _, s := range skipped {
		log.Printf("[booking][usecase] skipping document ref_id=%s field=%s reason=%s", s.RefID, s.Field, s.Reason)
	}
	return BookingSnapshot{Records: records, Skipped: skipped}, nil
}

func (u *BookingUseCase) Transition(ctx context.Context, refID string, cmd TransitionCommand) (ledger.TransitionResult, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return ledger.TransitionResult{}, ErrInvalidRefID
	}
	log.Printf("[booking][usecase] transition start ref_id=%s target=%s actor=%s", refID, cmd.Target, cmd.Actor)

	current, err := u.load(ctx, refID)
	if err != nil {
		return ledger.TransitionResult{}, err
	}
	res, err := ledger.ApplyTransition(current, cmd.Target, ledger.TransitionContext{
		Actor:    cmd.Actor,
		Reason:   cmd.Reason,
		Packages: cmd.Packages,
		Restore:  cmd.Restore,
		Now:      u.localNow(),
	})
	if err != nil {
		log.Printf("[booking][usecase] transition refused ref_id=%s from=%s target=%s err=%v", refID, current.Status, cmd.Target, err)
		return ledger.TransitionResult{}, err
	}

	saved, err := u.save(ctx, res.Record, current.UpdatedAt)
	if err != nil {
		return ledger.TransitionResult{}, err
	}
	res.Record = saved
	u.dispatch(ctx, res.Effects)
	log.Printf("[booking][usecase] transition success ref_id=%s from=%s to=%s effects=%d", refID, current.Status, saved.Status, len(res.Effects))
	return res, nil
}

func (u *BookingUseCase) RecordPayment(ctx context.Context, refID string, stage entities.PaymentStage, actor string) (entities.BookingRecord, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.BookingRecord{}, ErrInvalidRefID
	}
	if !stage.Valid() {
		return entities.BookingRecord{}, ErrInvalidPaymentStage
	}

	current, err := u.load(ctx, refID)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	next, err := ledger.RecordStagePayment(current, stage, actor, u.localNow())
	if err != nil {
		log.Printf("[booking][usecase] payment refused ref_id=%s stage=%s err=%v", refID, stage, err)
		return entities.BookingRecord{}, err
	}
	saved, err := u.save(ctx, next, current.UpdatedAt)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	log.Printf("[booking][usecase] payment recorded ref_id=%s stage=%s amount_paid=%s", refID, stage, saved.Billing.AmountPaid)
	return saved, nil
}

func (u *BookingUseCase) SetOperationalCost(ctx context.Context, refID string, amount entities.Money, actor string) (entities.BookingRecord, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.BookingRecord{}, ErrInvalidRefID
	}

	current, err := u.load(ctx, refID)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	next, err := ledger.SetOperationalCost(current, amount, actor, u.localNow())
	if err != nil {
		return entities.BookingRecord{}, err
	}
	return u.save(ctx, next, current.UpdatedAt)
}

func (u *BookingUseCase) load(ctx context.Context, refID string) (entities.BookingRecord, error) {
	doc, err := u.repo.GetByRefID(ctx, refID)
	if err != nil {
		log.Printf("[booking][usecase] load failed ref_id=%s err=%v", refID, err)
		return entities.BookingRecord{}, err
	}
	if doc == nil {
		return entities.BookingRecord{}, ErrBookingNotFound
	}
	r, err := ledger.Normalize(doc)
	if err != nil {
		log.Printf("[booking][usecase] stored document invalid ref_id=%s err=%v", refID, err)
		return entities.BookingRecord{}, err
	}
	return r, nil
}

func (u *BookingUseCase) save(ctx context.Context, r entities.BookingRecord, prevUpdatedAt time.Time) (entities.BookingRecord, error) {
	saved, err := u.repo.Update(ctx, r, prevUpdatedAt)
	if err != nil {
		if errors.Is(err, interfaces.ErrBookingVersionConflict) {
			log.Printf("[booking][usecase] concurrent update ref_id=%s", r.RefID)
			return entities.BookingRecord{}, ErrBookingConflict
		}
		log.Printf("[booking][usecase] update failed ref_id=%s err=%v", r.RefID, err)
		return entities.BookingRecord{}, err
	}
	if saved.RefID == "" {
		return entities.BookingRecord{}, ErrBookingNotFound
	}
	u.invalidatePortfolio(ctx)
	return saved, nil
}

// dispatch executes SEND_EMAIL intents. PATCH_STATUS is already satisfied by
// the save that precedes it. Publishing failures are logged only.
func (u *BookingUseCase) dispatch(ctx context.Context, effects []ledger.Intent) {
	for _, e := range effects {
		if e.Kind != ledger.IntentSendEmail {
			continue
		}
		if u.publisher == nil {
			log.Printf("[booking][usecase] no publisher configured; dropping email ref_id=%s template=%s", e.RefID, e.Template)
			continue
		}
		if err := u.publisher.Publish(ctx, e); err != nil {
			log.Printf("[booking][usecase] publish failed ref_id=%s template=%s err=%v", e.RefID, e.Template, err)
		}
	}
}

func (u *BookingUseCase) invalidatePortfolio(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		log.Printf("[booking][usecase] portfolio cache invalidate failed err=%v", err)
	}
}

// NewRefID returns a booking reference such as BK-1F0C9A7E.
func NewRefID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(id[:8])
}
