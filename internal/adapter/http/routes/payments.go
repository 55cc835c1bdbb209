package routes

import (
	"catering_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments        = "/payments"
	PathPaymentReceipts = "/payment-receipts"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:ref_id/:stage", h.CreatePayment)
		payments.GET("/:ref_id", h.ListPayments)
	}

	rg.GET(PathPaymentReceipts+"/:id", h.GetPayment)
}
