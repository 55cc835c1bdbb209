package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catering_ledger/internal/adapter/http/handlers/mocks"
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLedgerRouter(t *testing.T) (*gin.Engine, *mocks.MockILedgerUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILedgerUseCase(ctrl)
	h := NewLedgerHandler(uc)

	r := gin.New()
	r.GET("/v1/ledger/portfolio", h.Portfolio)
	r.GET("/v1/ledger/dashboard", h.Dashboard)
	return r, uc
}

func TestLedgerHandler_Portfolio(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error", func(t *testing.T) {
		r, uc := newLedgerRouter(t)
		uc.EXPECT().Portfolio(gomock.Any()).Return(ledger.PortfolioView{}, errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ledger/portfolio", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newLedgerRouter(t)
		uc.EXPECT().Portfolio(gomock.Any()).Return(ledger.PortfolioView{
			TotalContract:    entities.MoneyFromFloat(100000),
			TotalCollected:   entities.MoneyFromFloat(5000),
			TotalReceivables: entities.MoneyFromFloat(95000),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ledger/portfolio", nil))

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["total_receivables"] != float64(95000) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLedgerHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default limit", func(t *testing.T) {
		r, uc := newLedgerRouter(t)
		uc.EXPECT().Dashboard(gomock.Any(), ledger.DefaultUpcomingLimit).Return(ledger.DashboardSummary{TotalBookings: 3}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ledger/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		r, uc := newLedgerRouter(t)
		uc.EXPECT().Dashboard(gomock.Any(), 10).Return(ledger.DashboardSummary{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ledger/dashboard?upcoming=10", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	for _, raw := range []string{"abc", "0", "51"} {
		t.Run("rejects upcoming="+raw, func(t *testing.T) {
			r, _ := newLedgerRouter(t)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ledger/dashboard?upcoming="+raw, nil))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}
