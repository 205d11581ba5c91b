package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/domain/model"
	"github.com/polkiloo/wsgateway/internal/server/http/dto"
)

// WithdrawalHandler manages withdrawal endpoints.
type WithdrawalHandler struct {
	facade WithdrawalFacade
}

// NewWithdrawalHandler constructs WithdrawalHandler.
func NewWithdrawalHandler(facade WithdrawalFacade) *WithdrawalHandler {
	return &WithdrawalHandler{facade: facade}
}

// Create handles POST /withdrawals.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeStatus(c, model.BadRequest("%s", err.Error()))
		return
	}

	withdrawal, err := h.facade.Withdraw(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

// Status handles GET /withdrawals/:id.
func (h *WithdrawalHandler) Status(c *gin.Context) {
	var path dto.WithdrawalIDPath
	if err := c.ShouldBindUri(&path); err != nil {
		writeStatus(c, model.BadRequest("%s", err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.facade.WithdrawalStatus(c.Request.Context(), path.ID))
}
