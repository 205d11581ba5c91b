package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/domain/model"
	"github.com/polkiloo/wsgateway/internal/server/http/dto"
)

// CredentialHandler sells access keys.
type CredentialHandler struct {
	facade CredentialFacade
}

// NewCredentialHandler constructs CredentialHandler.
func NewCredentialHandler(facade CredentialFacade) *CredentialHandler {
	return &CredentialHandler{facade: facade}
}

// Buy handles GET /buy?quantity=N.
func (h *CredentialHandler) Buy(c *gin.Context) {
	var query dto.BuyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeStatus(c, model.BadRequest("invalid quantity: %v", err))
		return
	}

	quantity, err := query.ParsedQuantity()
	if err != nil {
		writeStatus(c, model.BadRequest("invalid quantity: %v", err))
		return
	}

	key, err := h.facade.Buy(c.Request.Context(), quantity)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, key)
}
