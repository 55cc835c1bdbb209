package routes

import (
	"catering_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathLedger = "/ledger"

func addLedgerRoutes(rg *gin.RouterGroup, h *handlers.LedgerHandler) {
	ledger := rg.Group(PathLedger)
	{
		ledger.GET("/portfolio", h.Portfolio)
		ledger.GET("/dashboard", h.Dashboard)
	}
}
