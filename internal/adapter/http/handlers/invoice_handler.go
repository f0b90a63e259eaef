package handlers

import (
	"net/http"

	response "mecanica_ledger/internal/adapter/http/dto/response"
	"mecanica_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles HTTP requests for invoices (faturas).
type InvoiceHandler struct {
	usecase usecase.ILedgerUseCase
	log     *zap.Logger
}

func NewInvoiceHandler(uc usecase.ILedgerUseCase, log *zap.Logger) *InvoiceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, log: log.Named("invoice.handler")}
}

// ListInvoices godoc
//
// @Summary  List invoices
// @Tags     invoices
// @Produce  json
// @Success  200  {array}   response.InvoiceResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /faturas [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
//
// @Summary  Get invoice
// @Tags     invoices
// @Produce  json
// @Param    id   path      string  true  "Invoice ID"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /faturas/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warn("get failed", zap.String("invoice_id", c.Param("id")), zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// MarkInvoicePaid settles an invoice and records its commission.
//
// Paying an already paid invoice answers 200 with outcome already_paid and the
// commission recorded by the first call.
//
// @Summary      Mark invoice as paid
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.InvoicePaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /faturas/{id}/pagar [patch]
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	result, err := h.usecase.MarkInvoicePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("mark paid failed", zap.String("invoice_id", c.Param("id")), zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	if result.Outcome == usecase.PaymentOutcomeNotFound {
		abortWithAppError(c, errInvoiceNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(result))
}
