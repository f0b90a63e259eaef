package handlers

import (
	"net/http"

	request "mecanica_ledger/internal/adapter/http/dto/request"
	response "mecanica_ledger/internal/adapter/http/dto/response"
	"mecanica_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoicePaymentHandler charges invoices through the payment provider.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoiceSettlementUseCase
	log     *zap.Logger
}

func NewInvoicePaymentHandler(uc usecase.IInvoiceSettlementUseCase, log *zap.Logger) *InvoicePaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoicePaymentHandler{usecase: uc, log: log.Named("payment.handler")}
}

// CreatePayment charges the invoice in the path.
//
// The body is the Mercado Pago payment request, optionally wrapped in
// {"mp_payload": ...}. Approved payments answer 200 with the paid cascade;
// any other provider status answers 202 and the invoice stays pending.
//
// @Summary      Charge invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true   "Invoice ID"
// @Param        payload  body      request.InvoicePaymentRequest   false  "Mercado Pago payload"
// @Success      200      {object}  response.SettlementResponse
// @Success      202      {object}  response.SettlementResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /faturas/{id}/pagamentos [post]
func (h *InvoicePaymentHandler) CreatePayment(c *gin.Context) {
	invoiceID := c.Param("id")
	h.log.Info("create start", zap.String("invoice_id", invoiceID))

	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("read body failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		abortWithAppError(c, errInvalidPaymentPayload)
		return
	}
	payload, err := request.ParseInvoicePaymentPayload(raw)
	if err != nil {
		h.log.Warn("invalid payload", zap.String("invoice_id", invoiceID), zap.Error(err))
		abortWithAppError(c, errInvalidPaymentPayload)
		return
	}

	settlement, err := h.usecase.Settle(c.Request.Context(), invoiceID, payload)
	if err != nil {
		h.log.Warn("create failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		abortWithAppError(c, mapSettlementError(err))
		return
	}
	h.log.Info("create success",
		zap.String("invoice_id", invoiceID),
		zap.String("payment_id", settlement.Payment.ID),
		zap.String("provider_status", settlement.Payment.ProviderStatus),
	)

	status := http.StatusOK
	if settlement.Ledger == nil {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromInvoiceSettlement(settlement))
}

// ListPayments godoc
//
// @Summary  List payments of an invoice
// @Tags     invoices
// @Produce  json
// @Param    id   path      string  true  "Invoice ID"
// @Success  200  {array}   response.PaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /faturas/{id}/pagamentos [get]
func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warn("list failed", zap.String("invoice_id", c.Param("id")), zap.Error(err))
		abortWithAppError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(payments))
}
