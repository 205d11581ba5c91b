package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// writeStatus renders err as a Status envelope. The response code equals Status.Code.
func writeStatus(c *gin.Context, err error) {
	var st *model.Status
	if !errors.As(err, &st) {
		st = model.Internal("%v", err)
	}
	_ = c.Error(err)
	c.JSON(st.Code, st)
}
