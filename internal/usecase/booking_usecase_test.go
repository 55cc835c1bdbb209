package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase/interfaces"
	mock_interfaces "catering_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	fixedNow      = time.Date(2026, time.October, 16, 1, 30, 0, 0, time.UTC)
	storedUpdated = time.Date(2026, time.October, 1, 8, 0, 0, 0, time.UTC)
)

func storedDoc(refID string, status entities.BookingStatus, reservationPaid bool) entities.RawBookingDocument {
	reservation, amountPaid := "Unpaid", "0"
	if reservationPaid {
		reservation, amountPaid = "Paid", "5000.00"
	}
	return entities.RawBookingDocument{
		"ref_id": refID,
		"client": map[string]any{"name": "Maria Santos", "email": "maria@example.com"},
		"event": map[string]any{
			"date":   "2026-12-12",
			"type":   "Wedding",
			"venue":  "Garden Hall",
			"guests": float64(150),
		},
		"billing": map[string]any{
			"total_cost":           "100000.00",
			"reservation_fee":      "5000.00",
			"amount_paid":          amountPaid,
			"reservation_status":   reservation,
			"fifty_percent_status": "Unpaid",
			"full_payment_status":  "Unpaid",
		},
		"status":     string(status),
		"updated_at": storedUpdated.Format(time.RFC3339Nano),
	}
}

type bookingMocks struct {
	repo      *mock_interfaces.MockIBookingRepository
	publisher *mock_interfaces.MockINotificationPublisher
	cache     *mock_interfaces.MockIPortfolioCache
}

func newBookingUseCase(t *testing.T) (*BookingUseCase, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		repo:      mock_interfaces.NewMockIBookingRepository(ctrl),
		publisher: mock_interfaces.NewMockINotificationPublisher(ctrl),
		cache:     mock_interfaces.NewMockIPortfolioCache(ctrl),
	}
	uc := NewBookingUseCase(m.repo, m.publisher, m.cache)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func validInquiry() InquiryInput {
	return InquiryInput{
		Client:         entities.Client{Name: " Maria Santos ", Email: "maria@example.com"},
		EventDate:      entities.NewCalendarDate(2026, time.December, 12),
		EventType:      entities.EventTypeWedding,
		Venue:          "Garden Hall",
		Guests:         150,
		TotalCost:      entities.MoneyFromFloat(100000),
		ReservationFee: entities.MoneyFromFloat(5000),
	}
}

func TestBookingUseCase_CreateInquiry(t *testing.T) {
	t.Run("invalid inquiry", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		in := validInquiry()
		in.Client.Name = ""
		_, err := uc.CreateInquiry(context.Background(), in)
		if !errors.Is(err, ErrInvalidBooking) {
			t.Fatalf("expected ErrInvalidBooking, got %v", err)
		}
	})

	t.Run("reservation fee above total", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		in := validInquiry()
		in.ReservationFee = in.TotalCost + 1
		_, err := uc.CreateInquiry(context.Background(), in)
		if !errors.Is(err, ErrInvalidBooking) {
			t.Fatalf("expected ErrInvalidBooking, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingRecord{})).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord) (entities.BookingRecord, error) {
				if !strings.HasPrefix(r.RefID, "BK-") || len(r.RefID) != 11 {
					t.Fatalf("unexpected ref id %q", r.RefID)
				}
				if r.Status != entities.BookingStatusPending || r.Client.Name != "Maria Santos" {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.Billing.ReservationStatus != entities.PaymentStateUnpaid || len(r.Timeline) != 1 {
					t.Fatalf("unexpected billing/timeline: %+v", r)
				}
				if !r.CreatedAt.Equal(fixedNow) {
					t.Fatalf("expected created_at %s, got %s", fixedNow, r.CreatedAt)
				}
				return r, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		res, err := uc.CreateInquiry(context.Background(), validInquiry())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RefID == "" {
			t.Fatalf("expected generated ref id")
		}
	})

	t.Run("retries on ref id collision", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		var first string
		gomock.InOrder(
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.BookingRecord) (entities.BookingRecord, error) {
					first = r.RefID
					return entities.BookingRecord{}, interfaces.ErrBookingAlreadyExists
				},
			),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.BookingRecord) (entities.BookingRecord, error) {
					if r.RefID == first {
						t.Fatalf("expected a fresh ref id")
					}
					return r, nil
				},
			),
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.CreateInquiry(context.Background(), validInquiry()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BookingRecord{}, errors.New("db"))

		_, err := uc.CreateInquiry(context.Background(), validInquiry())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBookingUseCase_GetByRefID(t *testing.T) {
	t.Run("invalid ref id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.GetByRefID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRefID) {
			t.Fatalf("expected ErrInvalidRefID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(nil, nil)

		_, err := uc.GetByRefID(context.Background(), " BK-1 ")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("stored document invalid", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		doc := storedDoc("BK-1", entities.BookingStatusPending, false)
		doc["status"] = "Archived"
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(doc, nil)

		_, err := uc.GetByRefID(context.Background(), "BK-1")
		if !errors.Is(err, ledger.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusConfirmed, true), nil)

		r, err := uc.GetByRefID(context.Background(), "BK-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.BookingStatusConfirmed || r.Billing.TotalCost != entities.MoneyFromFloat(100000) {
			t.Fatalf("unexpected record: %+v", r)
		}
	})
}

func TestBookingUseCase_List(t *testing.T) {
	uc, m := newBookingUseCase(t)
	bad := storedDoc("BK-BAD", entities.BookingStatusPending, false)
	delete(bad, "client")
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.RawBookingDocument{
		storedDoc("BK-1", entities.BookingStatusPending, false),
		bad,
		storedDoc("BK-2", entities.BookingStatusReserved, true),
	}, nil)

	snap, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Records) != 2 || len(snap.Skipped) != 1 {
		t.Fatalf("expected 2 records and 1 skipped, got %d/%d", len(snap.Records), len(snap.Skipped))
	}
	if snap.Skipped[0].RefID != "BK-BAD" {
		t.Fatalf("unexpected skipped: %+v", snap.Skipped[0])
	}
}

func TestBookingUseCase_Transition(t *testing.T) {
	t.Run("reject publishes rejection email", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, false), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord, prev time.Time) (entities.BookingRecord, error) {
				if !prev.Equal(storedUpdated) {
					t.Fatalf("expected previous updated_at %s, got %s", storedUpdated, prev)
				}
				if r.Status != entities.BookingStatusRejected || r.RejectionReason != "Fully booked" {
					t.Fatalf("unexpected record: %+v", r)
				}
				return r, nil
			},
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in ledger.Intent) error {
				if in.Template != ledger.EmailRejection || in.Recipient != "maria@example.com" || in.Reason != "Fully booked" {
					t.Fatalf("unexpected intent: %+v", in)
				}
				return nil
			},
		)

		res, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusRejected, Reason: "Fully booked", Actor: "admin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Effects) != 2 || res.Effects[0].Kind != ledger.IntentPatchStatus {
			t.Fatalf("unexpected effects: %+v", res.Effects)
		}
	})

	t.Run("publish failure does not fail the transition", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, true), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord, _ time.Time) (entities.BookingRecord, error) { return r, nil },
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusConfirmed})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.Status != entities.BookingStatusConfirmed {
			t.Fatalf("unexpected status %s", res.Record.Status)
		}
	})

	t.Run("precondition failed", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, false), nil)

		_, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusRejected, Reason: " "})
		if !errors.Is(err, ledger.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, false), nil)

		_, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusCompleted})
		if !errors.Is(err, ledger.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("completion counts days in the business timezone", func(t *testing.T) {
		manila, err := time.LoadLocation("Asia/Manila")
		if err != nil {
			t.Skipf("timezone data unavailable: %v", err)
		}
		paidDoc := func() entities.RawBookingDocument {
			doc := storedDoc("BK-1", entities.BookingStatusPaid, true)
			doc["event"].(map[string]any)["date"] = "2026-12-11"
			return doc
		}
		// 2026-12-11 17:00 UTC is already 2026-12-12 in Manila.
		lateEvening := func() time.Time { return time.Date(2026, time.December, 11, 17, 0, 0, 0, time.UTC) }

		uc, m := newBookingUseCase(t)
		uc.now = lateEvening
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(paidDoc(), nil)
		if _, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusCompleted}); !errors.Is(err, ledger.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed in UTC, got %v", err)
		}

		uc, m = newBookingUseCase(t)
		uc.WithLocation(manila)
		uc.now = lateEvening
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(paidDoc(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord, _ time.Time) (entities.BookingRecord, error) { return r, nil },
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in ledger.Intent) error {
				if in.Template != ledger.EmailThankYou || in.NewStatus != entities.BookingStatusCompleted {
					t.Fatalf("unexpected intent: %+v", in)
				}
				return nil
			},
		)

		res, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.Status != entities.BookingStatusCompleted {
			t.Fatalf("unexpected status %s", res.Record.Status)
		}
	})

	t.Run("concurrent write", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, false), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.BookingRecord{}, interfaces.ErrBookingVersionConflict)

		_, err := uc.Transition(context.Background(), "BK-1", TransitionCommand{Target: entities.BookingStatusRejected, Reason: "Duplicate"})
		if !errors.Is(err, ErrBookingConflict) {
			t.Fatalf("expected ErrBookingConflict, got %v", err)
		}
	})
}

func TestBookingUseCase_RecordPayment(t *testing.T) {
	t.Run("invalid stage", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		_, err := uc.RecordPayment(context.Background(), "BK-1", "deposit", "admin")
		if !errors.Is(err, ErrInvalidPaymentStage) {
			t.Fatalf("expected ErrInvalidPaymentStage, got %v", err)
		}
	})

	t.Run("fifty percent after reservation", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusReserved, true), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord, _ time.Time) (entities.BookingRecord, error) { return r, nil },
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		r, err := uc.RecordPayment(context.Background(), "BK-1", entities.PaymentStageFiftyPercent, "cashier")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Billing.AmountPaid != entities.MoneyFromFloat(50000) {
			t.Fatalf("expected 50000.00 paid, got %s", r.Billing.AmountPaid)
		}
	})

	t.Run("full payment from zero is refused", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusPending, false), nil)

		_, err := uc.RecordPayment(context.Background(), "BK-1", entities.PaymentStageFull, "cashier")
		if !errors.Is(err, ledger.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})
}

func TestBookingUseCase_SetOperationalCost(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusConfirmed, true), nil)

		_, err := uc.SetOperationalCost(context.Background(), "BK-1", -100, "owner")
		if !errors.Is(err, ledger.ErrPreconditionFailed) {
			t.Fatalf("expected ErrPreconditionFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBookingUseCase(t)
		m.repo.EXPECT().GetByRefID(gomock.Any(), "BK-1").Return(storedDoc("BK-1", entities.BookingStatusConfirmed, true), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord, _ time.Time) (entities.BookingRecord, error) { return r, nil },
		)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		r, err := uc.SetOperationalCost(context.Background(), "BK-1", entities.MoneyFromFloat(60000), "owner")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p, ok := ledger.NetProfit(r); !ok || p != entities.MoneyFromFloat(40000) {
			t.Fatalf("unexpected net profit %s ok=%v", p, ok)
		}
	})
}

func TestNewRefID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewRefID()
		if len(id) != 11 || !strings.HasPrefix(id, "BK-") || strings.ToUpper(id) != id {
			t.Fatalf("unexpected ref id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ref id %q", id)
		}
		seen[id] = true
	}
}
