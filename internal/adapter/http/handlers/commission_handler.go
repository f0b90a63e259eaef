package handlers

import (
	"net/http"

	response "mecanica_ledger/internal/adapter/http/dto/response"
	"mecanica_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommissionHandler exposes the commissions recorded by the ledger.
type CommissionHandler struct {
	usecase usecase.ILedgerUseCase
	log     *zap.Logger
}

func NewCommissionHandler(uc usecase.ILedgerUseCase, log *zap.Logger) *CommissionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommissionHandler{usecase: uc, log: log.Named("commission.handler")}
}

// ListCommissions godoc
//
// @Summary  List commissions
// @Tags     commissions
// @Produce  json
// @Success  200  {array}   response.CommissionResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /comissoes [get]
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	commissions, err := h.usecase.ListCommissions(c.Request.Context())
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		abortWithAppError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(commissions))
}
