package ledger

import (
	"fmt"
	"sort"
	"time"

	"catering_ledger/internal/domain/entities"
)

type MonthlyForecast struct {
	Year            int            `json:"year"`
	Month           time.Month     `json:"month"`
	MonthLabel      string         `json:"month_label"`
	ProjectedInflow entities.Money `json:"projected_inflow"`
}

type CategoryTotals struct {
	Count   int            `json:"count"`
	Revenue entities.Money `json:"revenue"`
}

// PortfolioView is the ledger-level fold of a booking snapshot. It holds no
// state of its own and is recomputed on every call.
type PortfolioView struct {
	TotalContract     entities.Money                        `json:"total_contract"`
	TotalCollected    entities.Money                        `json:"total_collected"`
	TotalReceivables  entities.Money                        `json:"total_receivables"`
	TotalExpenses     entities.Money                        `json:"total_expenses"`
	NetProfit         entities.Money                        `json:"net_profit"`
	MonthlyForecast   []MonthlyForecast                     `json:"monthly_forecast"`
	CategoryBreakdown map[entities.EventType]CategoryTotals `json:"category_breakdown"`
	Warnings          []AggregationSkipped                  `json:"warnings,omitempty"`
}

type monthKey struct {
	year  int
	month time.Month
}

// Aggregate folds records into a PortfolioView.
//
// Rejected bookings never count. Records that fail validation or carry no
// event date are skipped and reported in Warnings. The forecast only sums
// positive balances and is ordered by (year, month).
func Aggregate(records []entities.BookingRecord) PortfolioView {
	view := PortfolioView{
		MonthlyForecast:   []MonthlyForecast{},
		CategoryBreakdown: map[entities.EventType]CategoryTotals{},
	}
	buckets := map[monthKey]entities.Money{}

	for _, r := range records {
		if r.Status == entities.BookingStatusRejected {
			continue
		}
		if err := r.Validate(); err != nil {
			view.Warnings = append(view.Warnings, AggregationSkipped{RefID: r.RefID, Reason: err.Error()})
			continue
		}
		if r.Event.Date.IsZero() {
			view.Warnings = append(view.Warnings, AggregationSkipped{RefID: r.RefID, Reason: "event date missing"})
			continue
		}

		paid := AmountPaid(r)
		balance := BalanceDue(r)
		view.TotalContract = view.TotalContract.Add(r.Billing.TotalCost)
		view.TotalCollected = view.TotalCollected.Add(paid)
		view.TotalReceivables = view.TotalReceivables.Add(balance)
		view.TotalExpenses = view.TotalExpenses.Add(r.Billing.OperationalCost)
		if profit, ok := NetProfit(r); ok {
			view.NetProfit = view.NetProfit.Add(profit)
		}

		if balance.IsPositive() {
			k := monthKey{year: r.Event.Date.Year, month: r.Event.Date.Month}
			buckets[k] = buckets[k].Add(balance)
		}

		cat := view.CategoryBreakdown[r.Event.Type]
		cat.Count++
		cat.Revenue = cat.Revenue.Add(r.Billing.TotalCost)
		view.CategoryBreakdown[r.Event.Type] = cat
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	for _, k := range keys {
		view.MonthlyForecast = append(view.MonthlyForecast, MonthlyForecast{
			Year:            k.year,
			Month:           k.month,
			MonthLabel:      monthLabel(k),
			ProjectedInflow: buckets[k],
		})
	}
	return view
}

func monthLabel(k monthKey) string {
	return fmt.Sprintf("%s %d", k.month.String()[:3], k.year)
}
