package ledger

import (
	"errors"
	"testing"
	"time"

	"catering_ledger/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountPaidAndBalanceDue(t *testing.T) {
	base := bookingIn(entities.BookingStatusPending)

	cases := []struct {
		name                     string
		reservation, fifty, full bool
		wantPaid, wantBalance    entities.Money
		wantBadge                PaymentBadge
	}{
		{name: "nothing paid", wantPaid: 0, wantBalance: peso(100000), wantBadge: BadgeUnpaid},
		{name: "reservation only", reservation: true, wantPaid: peso(5000), wantBalance: peso(95000), wantBadge: BadgeReservationPaid},
		{name: "reservation and fifty", reservation: true, fifty: true, wantPaid: peso(50000), wantBalance: peso(50000), wantBadge: BadgeFiftyPercentPaid},
		{name: "fifty without reservation", fifty: true, wantPaid: peso(45000), wantBalance: peso(55000), wantBadge: BadgeFiftyPercentPaid},
		{name: "fully paid", reservation: true, fifty: true, full: true, wantPaid: peso(100000), wantBalance: 0, wantBadge: BadgeFullyPaid},
		{name: "full flag wins over missing earlier stages", full: true, wantPaid: peso(100000), wantBalance: 0, wantBadge: BadgeFullyPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			r.Billing.ReservationStatus = stateOf(tc.reservation)
			r.Billing.FiftyPercentStatus = stateOf(tc.fifty)
			r.Billing.FullPaymentStatus = stateOf(tc.full)

			assert.Equal(t, tc.wantPaid, AmountPaid(r))
			assert.Equal(t, tc.wantBalance, BalanceDue(r))
			assert.Equal(t, tc.wantBadge, PaymentStageBadge(r))
			assert.Equal(t, r.Billing.TotalCost, AmountPaid(r).Add(BalanceDue(r)))
		})
	}
}

func stateOf(paid bool) entities.PaymentState {
	if paid {
		return entities.PaymentStatePaid
	}
	return entities.PaymentStateUnpaid
}

func TestDerivedFiguresIgnoreStatus(t *testing.T) {
	for _, s := range entities.AllBookingStatuses {
		r := withFlags(bookingIn(entities.BookingStatusPending), true, false, false)
		r.Status = s
		assert.Equal(t, peso(5000), AmountPaid(r), s)
		assert.Equal(t, peso(95000), BalanceDue(r), s)
	}
}

func TestAmountPaidClampsToTotal(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)
	r.Billing.TotalCost = peso(4000)
	r.Billing.ReservationFee = peso(5000)
	r.Billing.ReservationStatus = entities.PaymentStatePaid

	assert.Equal(t, peso(4000), AmountPaid(r))
	assert.Equal(t, entities.Money(0), BalanceDue(r))
	assert.Equal(t, entities.Money(0), Downpayment(r))
}

func TestNetProfitUndefinedWithoutOperationalCost(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)
	r.Billing.TotalCost = peso(50000)
	r.Billing.OperationalCost = 0

	_, ok := NetProfit(r)
	assert.False(t, ok)
	_, ok = MarginPercent(r)
	assert.False(t, ok)

	s := Summarize(r)
	assert.Nil(t, s.NetProfit)
	assert.Nil(t, s.MarginPercent)
}

func TestNetProfitAndMargin(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)
	r.Billing.OperationalCost = peso(65000)

	p, ok := NetProfit(r)
	require.True(t, ok)
	assert.Equal(t, peso(35000), p)
	m, ok := MarginPercent(r)
	require.True(t, ok)
	assert.Equal(t, 35.0, m)

	r.Billing.TotalCost = peso(30000)
	r.Billing.ReservationFee = peso(3000)
	r.Billing.OperationalCost = peso(10000)
	m, ok = MarginPercent(r)
	require.True(t, ok)
	assert.Equal(t, 66.7, m)

	r.Billing.OperationalCost = peso(45000)
	p, ok = NetProfit(r)
	require.True(t, ok)
	assert.True(t, p.IsNegative(), "losses are reported, not clamped")
	m, _ = MarginPercent(r)
	assert.Equal(t, -50.0, m)

	r.Billing.TotalCost = 0
	r.Billing.ReservationFee = 0
	_, ok = MarginPercent(r)
	assert.False(t, ok, "margin is undefined on a zero contract")
}

func TestSummarize(t *testing.T) {
	r := withFlags(bookingIn(entities.BookingStatusReserved), true, true, false)
	r.AddOns = []entities.AddOn{{Name: "Photo booth", Price: peso(8000)}, {Name: "Lechon", Price: peso(6500)}}
	r.Billing.OperationalCost = peso(60000)

	s := Summarize(r)
	assert.Equal(t, peso(14500), s.AddOnsTotal)
	assert.Equal(t, peso(50000), s.AmountPaid)
	assert.Equal(t, peso(50000), s.BalanceDue)
	assert.Equal(t, peso(45000), s.Downpayment)
	assert.Equal(t, BadgeFiftyPercentPaid, s.PaymentBadge)
	require.NotNil(t, s.NetProfit)
	assert.Equal(t, peso(40000), *s.NetProfit)
	require.NotNil(t, s.MarginPercent)
	assert.Equal(t, 40.0, *s.MarginPercent)
}

func TestRecordStagePayments_InOrder(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)

	r, err := RecordStagePayment(r, entities.PaymentStageReservation, "cashier", testNow)
	require.NoError(t, err)
	assert.Equal(t, peso(5000), r.Billing.AmountPaid)
	assert.True(t, r.Billing.ReservationStatus.IsPaid())

	r, err = RecordStagePayment(r, entities.PaymentStageFiftyPercent, "cashier", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, peso(50000), r.Billing.AmountPaid)

	r, err = RecordStagePayment(r, entities.PaymentStageFull, "cashier", testNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, peso(100000), r.Billing.AmountPaid)
	assert.Equal(t, entities.Money(0), BalanceDue(r))
	assert.Equal(t, BadgeFullyPaid, PaymentStageBadge(r))

	require.Len(t, r.Timeline, 3)
	assert.Equal(t, "cashier", r.Timeline[2].Actor)
	assert.Contains(t, r.Timeline[2].Action, "50000.00")
	assert.Equal(t, testNow.Add(2*time.Hour), r.UpdatedAt)
	assert.NoError(t, r.Validate())
}

func TestRecordFullPayment_AfterReservationSetsEveryFlag(t *testing.T) {
	r := withFlags(bookingIn(entities.BookingStatusPending), true, false, false)

	out, err := RecordFullPayment(r, "", testNow)
	require.NoError(t, err)
	assert.True(t, out.Billing.FiftyPercentStatus.IsPaid())
	assert.True(t, out.Billing.FullPaymentStatus.IsPaid())
	assert.Equal(t, "system", out.Timeline[0].Actor)
	assert.Contains(t, out.Timeline[0].Action, "95000.00")
	assert.False(t, r.Billing.FullPaymentStatus.IsPaid(), "input must not be modified")
}

func TestRecordFullPayment_ZeroReservationFeeMarkedPaid(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)
	r.Billing.ReservationFee = 0
	r = withFlags(r, true, false, false)
	require.Equal(t, entities.Money(0), AmountPaid(r))

	out, err := RecordFullPayment(r, "cashier", testNow)
	require.NoError(t, err)
	assert.True(t, out.Billing.FullPaymentStatus.IsPaid())
	assert.Equal(t, peso(100000), AmountPaid(out))
	assert.Contains(t, out.Timeline[0].Action, "100000.00")
}

func TestRecordStagePayment_Refusals(t *testing.T) {
	cases := []struct {
		name   string
		record entities.BookingRecord
		stage  entities.PaymentStage
		guard  Guard
	}{
		{
			name:   "full payment from zero",
			record: bookingIn(entities.BookingStatusPending),
			stage:  entities.PaymentStageFull,
			guard:  GuardNoPaymentRecorded,
		},
		{
			name:   "fifty before reservation",
			record: bookingIn(entities.BookingStatusPending),
			stage:  entities.PaymentStageFiftyPercent,
			guard:  GuardReservationUnpaid,
		},
		{
			name:   "reservation twice",
			record: withFlags(bookingIn(entities.BookingStatusPending), true, false, false),
			stage:  entities.PaymentStageReservation,
			guard:  GuardAlreadyPaid,
		},
		{
			name:   "already fully paid",
			record: withFlags(bookingIn(entities.BookingStatusPaid), true, true, true),
			stage:  entities.PaymentStageFull,
			guard:  GuardAlreadyPaid,
		},
		{
			name: "fee larger than contract",
			record: func() entities.BookingRecord {
				r := bookingIn(entities.BookingStatusPending)
				r.Billing.TotalCost = peso(1000)
				return r
			}(),
			stage: entities.PaymentStageReservation,
			guard: GuardFeeExceedsTotal,
		},
		{
			name:   "rejected booking",
			record: bookingIn(entities.BookingStatusRejected),
			stage:  entities.PaymentStageReservation,
			guard:  GuardBookingClosed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordStagePayment(tc.record, tc.stage, "cashier", testNow)
			var pf *PreconditionFailedError
			require.True(t, errors.As(err, &pf), "expected PreconditionFailedError, got %v", err)
			assert.Equal(t, tc.guard, pf.Guard)
		})
	}
}

func TestRecordStagePayment_CompletedBookingStillCollects(t *testing.T) {
	r := withFlags(bookingIn(entities.BookingStatusCompleted), true, true, false)
	out, err := RecordStagePayment(r, entities.PaymentStageFull, "cashier", testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.Money(0), BalanceDue(out))
}

func TestStageAmount(t *testing.T) {
	r := bookingIn(entities.BookingStatusPending)
	assert.Equal(t, peso(5000), StageAmount(r, entities.PaymentStageReservation))
	assert.Equal(t, peso(45000), StageAmount(r, entities.PaymentStageFiftyPercent))
	assert.Equal(t, peso(100000), StageAmount(r, entities.PaymentStageFull))

	r = withFlags(r, true, true, false)
	assert.Equal(t, peso(50000), StageAmount(r, entities.PaymentStageFull))
}

func TestRecordStagePayment_UnknownStagePanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = RecordStagePayment(bookingIn(entities.BookingStatusPending), "deposit", "", testNow)
	})
}

func TestSetOperationalCost(t *testing.T) {
	r := bookingIn(entities.BookingStatusConfirmed)

	out, err := SetOperationalCost(r, peso(42000), "owner", testNow)
	require.NoError(t, err)
	assert.Equal(t, peso(42000), out.Billing.OperationalCost)
	p, ok := NetProfit(out)
	require.True(t, ok)
	assert.Equal(t, peso(58000), p)
	assert.Len(t, out.Timeline, 1)

	cleared, err := SetOperationalCost(out, 0, "owner", testNow)
	require.NoError(t, err)
	_, ok = NetProfit(cleared)
	assert.False(t, ok)

	_, err = SetOperationalCost(r, -1, "owner", testNow)
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	_, err = SetOperationalCost(bookingIn(entities.BookingStatusRejected), peso(1), "owner", testNow)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}
