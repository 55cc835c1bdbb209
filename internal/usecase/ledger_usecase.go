package usecase

import (
	"context"
	"log"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase/interfaces"
)

//go:generate mockgen -source=ledger_usecase.go -destination=../adapter/http/handlers/mocks/mock_ledger_usecase.go -package=mocks

// ILedgerUseCase serves the read-only ledger figures.
type ILedgerUseCase interface {
	Portfolio(ctx context.Context) (ledger.PortfolioView, error)
	Dashboard(ctx context.Context, upcomingLimit int) (ledger.DashboardSummary, error)
}

type LedgerUseCase struct {
	bookings IBookingUseCase
	cache    interfaces.IPortfolioCache
	loc      *time.Location
	now      func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

// NewLedgerUseCase wires the use case. cache is optional; loc decides which
// calendar day counts as today and defaults to UTC.
func NewLedgerUseCase(bookings IBookingUseCase, cache interfaces.IPortfolioCache, loc *time.Location) *LedgerUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &LedgerUseCase{bookings: bookings, cache: cache, loc: loc, now: time.Now}
}

// Portfolio folds the current snapshot, serving a cached view when one is
// available. Cache errors degrade to a direct computation.
func (u *LedgerUseCase) Portfolio(ctx context.Context) (ledger.PortfolioView, error) {
	var generation int64
	if u.cache != nil {
		view, gen, ok, err := u.cache.Get(ctx)
		generation = gen
		switch {
		case err != nil:
			log.Printf("[ledger][usecase] portfolio cache read failed err=%v", err)
		case ok:
			return view, nil
		}
	}

	snap, err := u.bookings.List(ctx)
	if err != nil {
		return ledger.PortfolioView{}, err
	}
	view := ledger.Aggregate(snap.Records)
	for _, s := range snap.Skipped {
		view.Warnings = append(view.Warnings, ledger.AggregationSkipped{RefID: s.RefID, Reason: s.Error()})
	}
	log.Printf("[ledger][usecase] portfolio computed records=%d warnings=%d", len(snap.Records), len(view.Warnings))

	if u.cache != nil {
		if err := u.cache.Set(ctx, view, generation); err != nil {
			log.Printf("[ledger][usecase] portfolio cache write failed err=%v", err)
		}
	}
	return view, nil
}

func (u *LedgerUseCase) Dashboard(ctx context.Context, upcomingLimit int) (ledger.DashboardSummary, error) {
	snap, err := u.bookings.List(ctx)
	if err != nil {
		return ledger.DashboardSummary{}, err
	}
	today := entities.CalendarDateOf(u.now().In(u.loc))
	return ledger.Dashboard(snap.Records, today, upcomingLimit), nil
}
