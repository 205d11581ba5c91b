package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// Recovery turns handler panics into a 500 Status and logs them with logger
// instead of gin's default stderr writer.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("request_id", CurrentRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("panic", fmt.Sprint(recovered)),
			slog.String("stack", string(debug.Stack())),
		)
		st := model.Internal("internal server error")
		c.AbortWithStatusJSON(st.Code, st)
	})
}
