package handlers

import (
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase"
	"catering_ledger/pkg"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxUpcomingLimit = 50

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// Portfolio returns the financial roll-up over every booking.
//
// @Summary Portfolio financials
// @Tags ledger
// @Produce json
// @Success 200 {object} ledger.PortfolioView
// @Failure 400 {object} pkg.HTTPError
// @Router /ledger/portfolio [get]
func (h *LedgerHandler) Portfolio(c *gin.Context) {
	view, err := h.usecase.Portfolio(c.Request.Context())
	if err != nil {
		log.Printf("[ledger][handler] portfolio failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

// Dashboard returns status counts and the next upcoming events. The optional
// upcoming query parameter caps how many events are listed.
//
// @Summary Dashboard summary
// @Tags ledger
// @Produce json
// @Param upcoming query int false "upcoming events to list"
// @Success 200 {object} ledger.DashboardSummary
// @Failure 400 {object} pkg.HTTPError
// @Router /ledger/dashboard [get]
func (h *LedgerHandler) Dashboard(c *gin.Context) {
	limit := ledger.DefaultUpcomingLimit
	if raw := c.Query("upcoming"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxUpcomingLimit {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "upcoming must be between 1 and 50", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}

	summary, err := h.usecase.Dashboard(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[ledger][handler] dashboard failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}
