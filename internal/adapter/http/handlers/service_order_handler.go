package handlers

import (
	"net/http"

	request "mecanica_ledger/internal/adapter/http/dto/request"
	response "mecanica_ledger/internal/adapter/http/dto/response"
	"mecanica_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceOrderHandler handles HTTP requests for service orders (OS).
type ServiceOrderHandler struct {
	usecase usecase.ILedgerUseCase
	log     *zap.Logger
}

func NewServiceOrderHandler(uc usecase.ILedgerUseCase, log *zap.Logger) *ServiceOrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceOrderHandler{usecase: uc, log: log.Named("service_order.handler")}
}

// CreateServiceOrder opens a service order together with its pending invoice.
//
// @Summary      Create service order
// @Description  Creates a service order and the pending invoice generated from it
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateServiceOrderRequest  true  "Service order"
// @Success      201      {object}  response.ServiceOrderCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /ordens-servico [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("invalid payload", zap.Error(err))
		abortWithAppError(c, errInvalidServiceOrderPayload)
		return
	}

	created, err := h.usecase.CreateServiceOrder(c.Request.Context(), usecase.CreateServiceOrderInput{
		Client:      payload.ResolveClient(),
		ServiceType: payload.ResolveServiceType(),
		Amount:      payload.ResolveAmount(),
	})
	if err != nil {
		h.log.Warn("create failed", zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrderCreation(created))
}

// ListServiceOrders godoc
//
// @Summary  List service orders
// @Tags     service-orders
// @Produce  json
// @Success  200  {array}   response.ServiceOrderResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /ordens-servico [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.ListServiceOrders(c.Request.Context())
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// ListInvoicesByServiceOrder godoc
//
// @Summary  List invoices of a service order
// @Tags     service-orders
// @Produce  json
// @Param    id   path      string  true  "Service order ID"
// @Success  200  {array}   response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /ordens-servico/{id}/faturas [get]
func (h *ServiceOrderHandler) ListInvoicesByServiceOrder(c *gin.Context) {
	invoices, err := h.usecase.ListInvoicesByServiceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Warn("list invoices failed", zap.String("service_order_id", c.Param("id")), zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}
