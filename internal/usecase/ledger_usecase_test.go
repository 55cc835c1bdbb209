package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	mock_interfaces "catering_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newLedgerUseCase(t *testing.T, withCache bool) (*LedgerUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIPortfolioCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	cache := mock_interfaces.NewMockIPortfolioCache(ctrl)
	bookings := NewBookingUseCase(repo, nil, nil)
	if !withCache {
		return NewLedgerUseCase(bookings, nil, nil), repo, cache
	}
	return NewLedgerUseCase(bookings, cache, nil), repo, cache
}

func TestLedgerUseCase_Portfolio(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		uc, _, cache := newLedgerUseCase(t, true)
		cached := ledger.PortfolioView{TotalContract: entities.MoneyFromFloat(123)}
		cache.EXPECT().Get(gomock.Any()).Return(cached, int64(4), true, nil)

		view, err := uc.Portfolio(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.TotalContract != cached.TotalContract {
			t.Fatalf("expected cached view, got %+v", view)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		uc, repo, cache := newLedgerUseCase(t, true)
		bad := storedDoc("BK-BAD", entities.BookingStatusPending, false)
		bad["status"] = "Archived"
		cache.EXPECT().Get(gomock.Any()).Return(ledger.PortfolioView{}, int64(7), false, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.RawBookingDocument{
			storedDoc("BK-1", entities.BookingStatusReserved, true),
			storedDoc("BK-2", entities.BookingStatusRejected, false),
			bad,
		}, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(7)).DoAndReturn(
			func(_ context.Context, v ledger.PortfolioView, _ int64) error {
				if v.TotalContract != entities.MoneyFromFloat(100000) {
					t.Fatalf("unexpected cached total %s", v.TotalContract)
				}
				return nil
			},
		)

		view, err := uc.Portfolio(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.TotalCollected != entities.MoneyFromFloat(5000) || view.TotalReceivables != entities.MoneyFromFloat(95000) {
			t.Fatalf("unexpected totals: %+v", view)
		}
		if len(view.MonthlyForecast) != 1 || view.MonthlyForecast[0].MonthLabel != "Dec 2026" {
			t.Fatalf("unexpected forecast: %+v", view.MonthlyForecast)
		}
		if len(view.Warnings) != 1 || view.Warnings[0].RefID != "BK-BAD" {
			t.Fatalf("expected one warning for BK-BAD, got %+v", view.Warnings)
		}
	})

	t.Run("write between read and store keeps the generation seen on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		cache := mock_interfaces.NewMockIPortfolioCache(ctrl)
		bookings := NewBookingUseCase(repo, nil, cache)
		bookings.now = func() time.Time { return fixedNow }
		uc := NewLedgerUseCase(bookings, cache, nil)

		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any()).Return(ledger.PortfolioView{}, int64(2), false, nil),
			repo.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.RawBookingDocument, error) {
				// A concurrent write lands after the snapshot was read.
				repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusConfirmed, true), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r entities.BookingRecord, _ time.Time) (entities.BookingRecord, error) { return r, nil },
				)
				cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
				if _, err := bookings.SetOperationalCost(ctx, "BK-1", entities.MoneyFromFloat(60000), "admin"); err != nil {
					t.Fatalf("unexpected write error: %v", err)
				}
				return []entities.RawBookingDocument{storedDoc("BK-1", entities.BookingStatusConfirmed, true)}, nil
			}),
			cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(2)).Return(nil),
		)

		if _, err := uc.Portfolio(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cache errors fall back to computing", func(t *testing.T) {
		uc, repo, cache := newLedgerUseCase(t, true)
		cache.EXPECT().Get(gomock.Any()).Return(ledger.PortfolioView{}, int64(0), false, errors.New("redis down"))
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(0)).Return(errors.New("redis down"))

		view, err := uc.Portfolio(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.TotalContract != 0 || view.MonthlyForecast == nil {
			t.Fatalf("expected empty view with non-nil forecast, got %+v", view)
		}
	})

	t.Run("store error", func(t *testing.T) {
		uc, repo, _ := newLedgerUseCase(t, false)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Portfolio(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLedgerUseCase_Dashboard(t *testing.T) {
	uc, repo, _ := newLedgerUseCase(t, false)
	manila, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	uc.loc = manila
	// 2026-12-11 17:00 UTC is already 2026-12-12 in Manila.
	uc.now = func() time.Time { return time.Date(2026, time.December, 11, 17, 0, 0, 0, time.UTC) }

	past := storedDoc("BK-OLD", entities.BookingStatusConfirmed, true)
	past["event"].(map[string]any)["date"] = "2026-12-11"
	repo.EXPECT().List(gomock.Any()).Return([]entities.RawBookingDocument{
		storedDoc("BK-1", entities.BookingStatusReserved, true),
		storedDoc("BK-2", entities.BookingStatusPending, false),
		past,
	}, nil)

	d, err := uc.Dashboard(context.Background(), ledger.DefaultUpcomingLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalBookings != 3 || d.PendingInquiries != 1 {
		t.Fatalf("unexpected counts: %+v", d)
	}
	if len(d.UpcomingEvents) != 2 || d.UpcomingEvents[0].RefID != "BK-1" || d.UpcomingEvents[1].RefID != "BK-2" {
		t.Fatalf("expected BK-1 then BK-2 upcoming, got %+v", d.UpcomingEvents)
	}
}
