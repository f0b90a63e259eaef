package routes

import (
	"mecanica_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/ordens-servico"
	PathInvoices      = "/faturas"
	PathCommissions   = "/comissoes"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	serviceOrderHandler *handlers.ServiceOrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	commissionHandler *handlers.CommissionHandler,
	paymentHandler *handlers.InvoicePaymentHandler,
) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", serviceOrderHandler.CreateServiceOrder)
		orders.GET("", serviceOrderHandler.ListServiceOrders)
		orders.GET("/:id/faturas", serviceOrderHandler.ListInvoicesByServiceOrder)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/pagar", invoiceHandler.MarkInvoicePaid)
		invoices.POST("/:id/pagamentos", paymentHandler.CreatePayment)
		invoices.GET("/:id/pagamentos", paymentHandler.ListPayments)
	}

	rg.GET(PathCommissions, commissionHandler.ListCommissions)
}
